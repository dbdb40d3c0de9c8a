package analyzer

type Course struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StaticCatalog is the built-in course catalog.
type StaticCatalog struct{}

func (StaticCatalog) CoursesFor(field Field) []Course {
	courses, ok := staticCourses[field]
	if !ok {
		return []Course{}
	}
	return append([]Course(nil), courses...)
}

var staticCourses = map[Field][]Course{
	FieldDataScience: {
		{Name: "Machine Learning Crash Course by Google [Free]", URL: "https://developers.google.com/machine-learning/crash-course"},
		{Name: "Machine Learning A-Z by Udemy", URL: "https://www.udemy.com/course/machinelearning/"},
		{Name: "Machine Learning by Andrew NG", URL: "https://www.coursera.org/learn/machine-learning"},
		{Name: "Data Science Foundations: Fundamentals by LinkedIn", URL: "https://www.linkedin.com/learning/data-science-foundations-fundamentals-5"},
		{Name: "Data Scientist with Python", URL: "https://www.datacamp.com/tracks/data-scientist-with-python"},
		{Name: "Programming for Data Science with Python", URL: "https://www.udacity.com/course/programming-for-data-science-nanodegree--nd104"},
		{Name: "Introduction to Data Science", URL: "https://www.udacity.com/course/introduction-to-data-science--cd0017"},
		{Name: "Intro to Machine Learning with TensorFlow", URL: "https://www.udacity.com/course/intro-to-machine-learning-with-tensorflow-nanodegree--nd230"},
	},
	FieldWebDevelopment: {
		{Name: "Django Crash course [Free]", URL: "https://youtu.be/e1IyzVyrLSU"},
		{Name: "Python and Django Full Stack Web Developer Bootcamp", URL: "https://www.udemy.com/course/python-and-django-full-stack-web-developer-bootcamp"},
		{Name: "React Crash Course [Free]", URL: "https://youtu.be/Dorf8i6lCuk"},
		{Name: "Node.js and Express.js [Free]", URL: "https://youtu.be/Oe421EPjeBE"},
		{Name: "Flask: Develop Web Applications in Python", URL: "https://www.educative.io/courses/flask-develop-web-applications-in-python"},
		{Name: "Full Stack Web Developer by Udacity", URL: "https://www.udacity.com/course/full-stack-web-developer-nanodegree--nd0044"},
		{Name: "Front End Web Developer by Udacity", URL: "https://www.udacity.com/course/front-end-web-developer-nanodegree--nd0011"},
		{Name: "Become a React Developer by Udacity", URL: "https://www.udacity.com/course/react-nanodegree--nd019"},
	},
	FieldAndroidDevelopment: {
		{Name: "Android Development for Beginners [Free]", URL: "https://youtu.be/fis26HvvDII"},
		{Name: "Android App Development Specialization", URL: "https://www.coursera.org/specializations/android-app-development"},
		{Name: "Become an Android Kotlin Developer by Udacity", URL: "https://www.udacity.com/course/android-kotlin-developer-nanodegree--nd940"},
		{Name: "The Complete Android Developer Course", URL: "https://www.udemy.com/course/complete-android-n-developer-course/"},
		{Name: "Building an Android App with Architecture Components", URL: "https://www.linkedin.com/learning/building-an-android-app-with-architecture-components"},
		{Name: "Android App Development Masterclass using Kotlin", URL: "https://www.udemy.com/course/android-oreo-kotlin-app-masterclass/"},
		{Name: "Flutter & Dart - The Complete Flutter App Development Course", URL: "https://www.udemy.com/course/flutter-dart-the-complete-flutter-app-development-course/"},
		{Name: "Flutter App Development Course [Free]", URL: "https://youtu.be/rZLR5olMR64"},
	},
	FieldIOSDevelopment: {
		{Name: "IOS App Development by LinkedIn", URL: "https://www.linkedin.com/learning/subscription/topics/ios"},
		{Name: "iOS & Swift - The Complete iOS App Development Bootcamp", URL: "https://www.udemy.com/course/ios-13-app-development-bootcamp/"},
		{Name: "Become an iOS Developer", URL: "https://www.udacity.com/course/ios-developer-nanodegree--nd003"},
		{Name: "iOS App Development with Swift Specialization", URL: "https://www.coursera.org/specializations/app-development"},
		{Name: "Mobile App Development with Swift", URL: "https://www.edx.org/professional-certificate/curtinx-mobile-app-development-with-swift"},
		{Name: "Objective-C Crash Course for Swift Developers", URL: "https://www.udemy.com/course/objectivec/"},
		{Name: "Learn Swift by Codecademy", URL: "https://www.codecademy.com/learn/learn-swift"},
		{Name: "Swift Tutorial - Full Course for Beginners [Free]", URL: "https://youtu.be/comQ1-x2a1Q"},
	},
	FieldUIUXDevelopment: {
		{Name: "Google UX Design Professional Certificate", URL: "https://www.coursera.org/professional-certificates/google-ux-design"},
		{Name: "UI / UX Design Specialization", URL: "https://www.coursera.org/specializations/ui-ux-design"},
		{Name: "The Complete App Design Course - UX, UI and Design Thinking", URL: "https://www.udemy.com/course/the-complete-app-design-course-ux-and-ui-design/"},
		{Name: "UX & Web Design Master Course: Strategy, Design, Development", URL: "https://www.udemy.com/course/ux-web-design-master-course-strategy-design-development/"},
		{Name: "DESIGN RULES: Principles + Practices for Great UI Design", URL: "https://www.udemy.com/course/design-rules/"},
		{Name: "Become a UX Designer by Udacity", URL: "https://www.udacity.com/course/ux-designer-nanodegree--nd578"},
		{Name: "Adobe XD Tutorial: User Experience Design Course [Free]", URL: "https://youtu.be/68w2VwalD5w"},
		{Name: "Adobe XD for Beginners [Free]", URL: "https://youtu.be/WEljsc2jorI"},
	},
}
