package menu

import "fmt"

// courseLink is one course channel in a semester listing
type courseLink struct {
	Name string
	URL  string
}

// courseCatalog maps year key -> semester suffix -> course list. The catalog
// is the single source for the year/semester/course branch of the tree.
var courseCatalog = map[string]map[string][]courseLink{
	"2nd_year": {
		"1st_semester": {
			{Name: "Management", URL: "https://t.me/man_course"},
			{Name: "Accounting", URL: "https://t.me/acc_course"},
			{Name: "Discrete Mathematics", URL: "https://t.me/discrete_math_course"},
			{Name: "Foundation of Information System", URL: "https://t.me/fis_course"},
			{Name: "Introduction to Database", URL: "https://t.me/db_course1"},
			{Name: "Advanced Computer Programming", URL: "https://t.me/acp_course"},
		},
		"2nd_semester": {
			{Name: "Introductory Statistics", URL: "https://t.me/+JhEeDHh4kNswMjc8"},
			{Name: "Economics", URL: "https://t.me/+kXEicAbCcywxOGI0"},
			{Name: "Introduction to Information Storage and Retrieval", URL: "https://t.me/+ljxV8ycwetZmMDlk"},
			{Name: "Data Structure and Algorithm", URL: "https://t.me/+H2xvF45sekVmZWZk"},
			{Name: "Object Oriented Programming", URL: "https://t.me/+Y2i1mmnOS_M1M2U0"},
			{Name: "Advanced Database Systems", URL: "https://t.me/+l31cuBsg9K5jNWU0"},
		},
	},
	"3rd_year": {
		"1st_semester": {
			{Name: "Introduction to System Analysis and Design", URL: "https://t.me/+ssWJIwAKf1liNTQ0"},
			{Name: "Computer Architecture and operating system", URL: "https://t.me/+FZuPpr68X-M4MjQ0"},
			{Name: "Networking", URL: "https://t.me/+-v31sfMr155hNWY0"},
			{Name: "Research Method", URL: "https://t.me/+0sKOOKneWvYwZmE0"},
			{Name: "Event Driven Programming", URL: "https://t.me/+zdeVGa761vY1ZDI0"},
			{Name: "Internet Programming", URL: "https://t.me/+Ti48IA7umC1jNzU0"},
		},
		"2nd_semester": {
			{Name: "Administration of Systems and Networks", URL: "https://t.me/admin_sys_net"},
			{Name: "E-commerce", URL: "https://t.me/ecommerce_course"},
			{Name: "Information System Security", URL: "https://t.me/iss_course"},
			{Name: "Advanced Internet Programming", URL: "https://t.me/adv_internet_prog"},
			{Name: "Mobile Computing", URL: "https://t.me/mobile_computing"},
			{Name: "Object Oriented System Analysis and Design", URL: "https://t.me/oosad"},
		},
	},
	"4th_year": {
		"1st_semester": {
			{Name: "Inclusiveness", URL: "https://t.me/project_management"},
			{Name: "Intoduction to Artificial Intelligence", URL: "https://t.me/artificial_intelligence"},
			{Name: "Information System Project Management", URL: "https://t.me/project_management"},
			{Name: "Human-Computer Interaction", URL: "https://t.me/hci"},
		},
		"2nd_semester": {
			{Name: "Global Trends", URL: "https://t.me/isp"},
			{Name: "Knowledge Management", URL: "https://t.me/knowledge_management"},
			{Name: "Management Of Information System and Services", URL: "https://t.me/iss"},
			{Name: "Enterprise Systems", URL: "https://t.me/it_audit"},
			{Name: "Introduction to Data Science and Analytics", URL: "https://t.me/internship"},
			{Name: "History", URL: "https://t.me/ethical_hacking"},
		},
	},
}

// yearOrder keeps the year selector stable regardless of map iteration
var yearOrder = []string{"2nd_year", "3rd_year", "4th_year"}

// semesterOrder keeps the semester selector stable
var semesterOrder = []string{"1st_semester", "2nd_semester"}

var yearLabels = map[string]string{
	"2nd_year": "2nd Year",
	"3rd_year": "3rd Year",
	"4th_year": "4th Year",
}

var semesterLabels = map[string]string{
	"1st_semester": "1st Semester",
	"2nd_semester": "2nd Semester",
}

// addCourseTree registers the year -> semester -> course-list branch. Every
// leaf course list ends with an Exit button.
func (r *Registry) addCourseTree() {
	yearRow := make([]Button, 0, len(yearOrder))
	for _, year := range yearOrder {
		yearRow = append(yearRow, Button{Label: yearLabels[year], Key: year})
	}
	r.add(&Node{
		Key:     KeyCourse,
		Kind:    KindMenu,
		Text:    ChooseYourYear,
		Buttons: [][]Button{yearRow},
	})

	for _, year := range yearOrder {
		semesterRow := make([]Button, 0, len(semesterOrder))
		for _, sem := range semesterOrder {
			semesterRow = append(semesterRow, Button{
				Label: semesterLabels[sem],
				Key:   year + "_" + sem,
			})
		}
		r.add(&Node{
			Key:     year,
			Kind:    KindMenu,
			Text:    fmt.Sprintf("Selected year : %s. Choose your semester:", yearLabels[year]),
			Buttons: [][]Button{semesterRow},
		})

		for _, sem := range semesterOrder {
			courses := courseCatalog[year][sem]
			rows := make([][]Button, 0, len(courses)+1)
			for _, course := range courses {
				rows = append(rows, []Button{{Label: course.Name, URL: course.URL}})
			}
			rows = append(rows, []Button{{Label: "Exit", Key: KeyEnd}})
			r.add(&Node{
				Key:     year + "_" + sem,
				Kind:    KindMenu,
				Text:    ChooseACourse,
				Buttons: rows,
			})
		}
	}
}
