// Package app связывает шлюзы ресурсов с контейнерами состояния:
// по одному методу на асинхронную операцию, каждый проводит свой
// контейнер через pending → fulfilled | rejected.
package app

import (
	"github.com/Spok95/school-admin-client/internal/config"
	"github.com/Spok95/school-admin-client/internal/logging"
	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/session"
	"github.com/Spok95/school-admin-client/internal/store"
	"github.com/Spok95/school-admin-client/internal/transport"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type App struct {
	cfg      *config.Config
	log      *zap.Logger
	client   *transport.Client
	validate *validator.Validate
	lim      *ScopeLimiter

	Session *session.Service

	Students    *store.Store[models.Student]
	Staff       *store.Store[models.Employee]
	Sections    *store.Store[models.Section]
	Grades      *store.Store[models.Grade]
	StudyStages *store.Store[models.StudyStage]
	Subjects    *store.Store[models.Subject]
	Attendances *store.Store[models.Attendance]
	Incidents   *store.Store[models.Incident]
	Marks       *store.Store[models.Mark]
	Schedules   *store.ScheduleStore
	Activities  *store.Store[models.Activity]
	Programs    *store.Store[models.Program]
	VisitDates  *store.Store[models.VisitDate]
	Visits      *store.Store[models.Visit]
}

func New(cfg *config.Config, log *logging.Log) *App {
	sess := session.NewService(cfg.SessionFile)
	sess.Rehydrate()

	a := &App{
		cfg:      cfg,
		log:      log.Named("app"),
		client:   transport.New(cfg.APIBaseURL, sess, log.Named("transport")),
		validate: newValidator(),
		lim:      NewScopeLimiter(),
		Session:  sess,

		Students:    store.New("students", func(s models.Student) int64 { return s.ID }),
		Staff:       store.New("staff", func(e models.Employee) int64 { return e.ID }),
		Sections:    store.New("sections", func(s models.Section) int64 { return s.ID }),
		Grades:      store.New("grades", func(g models.Grade) int64 { return g.ID }),
		StudyStages: store.New("study-stages", func(s models.StudyStage) int64 { return s.ID }),
		Subjects:    store.New("subjects", func(s models.Subject) int64 { return s.ID }),
		Attendances: store.New("attendances", func(a models.Attendance) int64 { return a.ID }),
		Incidents:   store.New("incidents", func(i models.Incident) int64 { return i.ID }),
		Marks:       store.New("marks", func(m models.Mark) int64 { return m.ID }),
		Schedules:   store.NewScheduleStore(),
		Activities:  store.New("activities", func(a models.Activity) int64 { return a.ID }),
		Programs:    store.New("programs", func(p models.Program) int64 { return p.ID }),
		VisitDates:  store.New("visit-dates", func(v models.VisitDate) int64 { return v.ID }),
		Visits:      store.New("visits", func(v models.Visit) int64 { return v.ID }),
	}
	return a
}

// MediaURL — абсолютная ссылка на загруженный файл (image/video).
func (a *App) MediaURL(path string) string {
	return models.MediaURL(a.cfg.MediaBaseURL, path)
}
