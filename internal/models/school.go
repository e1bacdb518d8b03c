package models

// Card — личные данные (у ученика, сотрудника и родителя своя карточка).
type Card struct {
	ID          int64  `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Religion    string `json:"religion,omitempty"`
	Address     string `json:"address,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

func (c *Card) FullName() string {
	if c == nil {
		return ""
	}
	return c.FirstName + " " + c.LastName
}

type StudyStage struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StudyYear struct {
	ID   int64  `json:"id"`
	Year string `json:"year"`
}

// Grade входит в StudyStage и привязан к StudyYear;
// цепочка StudyStage ⊇ Grade ⊇ Section фиксированная, 1:N.
type Grade struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	StudyStage *StudyStage `json:"study_stage,omitempty"`
	StudyYear  *StudyYear  `json:"study_year,omitempty"`
}

type Section struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Grade *Grade `json:"grade,omitempty"`
}

type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ParentJob struct {
	ID    int64  `json:"id,omitempty"`
	Title string `json:"title"`
}

type Parent struct {
	ID   int64      `json:"id,omitempty"`
	Job  *ParentJob `json:"job,omitempty"`
	Card *Card      `json:"card,omitempty"`
}

// Student всегда принадлежит ровно одному Section
// (до зачисления секция может быть не назначена).
type Student struct {
	ID      int64    `json:"id"`
	Card    *Card    `json:"card"`
	Section *Section `json:"section,omitempty"`
	Parent1 *Parent  `json:"parent1,omitempty"`
	Parent2 *Parent  `json:"parent2,omitempty"`
}

func (s *Student) FullName() string { return s.Card.FullName() }

type Employee struct {
	ID       int64    `json:"id"`
	Card     *Card    `json:"card"`
	Position string   `json:"position,omitempty"`
	Subjects []int64  `json:"subjects,omitempty"`
	Section  *Section `json:"section,omitempty"`
}

func (e *Employee) FullName() string { return e.Card.FullName() }
