package models

// Attendance — запись о посещаемости за день.
// excused имеет смысл только при absent=true; это проверяется
// на стороне клиента до отправки, бэкенд не валидирует.
type Attendance struct {
	ID        int64  `json:"id,omitempty"`
	StudentID int64  `json:"student_id"`
	Date      string `json:"date"`
	Absent    bool   `json:"absent"`
	Excused   bool   `json:"excused"`
	Note      string `json:"note,omitempty"`
}

type Incident struct {
	ID        int64   `json:"id,omitempty"`
	Students  []int64 `json:"students"`
	Title     string  `json:"title"`
	Procedure string  `json:"procedure,omitempty"`
	Note      string  `json:"note,omitempty"`
	Date      string  `json:"date"`
}

type MarkType string

const (
	MarkExam1 MarkType = "exam 1"
	MarkExam2 MarkType = "exam 2"
	MarkExam3 MarkType = "exam 3"
	MarkExam4 MarkType = "exam 4"
)

// Mark — оценка. Бэкенд отдаёт ученика денормализованным полным именем,
// а не внешним ключом; по нему же выполняется join с ростером.
type Mark struct {
	ID       int64    `json:"id,omitempty"`
	Student  string   `json:"student"`
	Subject  int64    `json:"subject"`
	MarkType MarkType `json:"mark_type"`
	Mark     float64  `json:"mark"`
	TopMark  float64  `json:"top_mark"`
	PassMark float64  `json:"pass_mark"`
	Date     string   `json:"date,omitempty"`
}

type Weekday string

// Учебная неделя — воскресенье..четверг.
const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
)

// Schedule — одна ячейка сетки расписания. Отображение рассчитывает
// не больше одной записи на (секция, день, время начала); пересечения
// клиент не проверяет.
type Schedule struct {
	ID        int64     `json:"id,omitempty"`
	Day       Weekday   `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Teacher   *Employee `json:"teacher,omitempty"`
	Section   *Section  `json:"section,omitempty"`
}
