package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Spok95/school-admin-client/internal/app"
	"github.com/Spok95/school-admin-client/internal/config"
	"github.com/Spok95/school-admin-client/internal/export"
	"github.com/Spok95/school-admin-client/internal/jobs"
	"github.com/Spok95/school-admin-client/internal/logging"
	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/observability"
	"github.com/joho/godotenv"
)

const release = "schooladmin@dev"

func main() {
	// Загрузка переменных окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		lg.Sugar.Warnw("sentry не инициализирован", "err", err)
	}
	defer flush()

	a := app.New(cfg, lg)
	if a.Session.TakeExpired() {
		fmt.Println("Сессия была завершена сервером, войдите заново.")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "login":
		if len(os.Args) != 4 {
			log.Fatal("использование: schooladmin login <логин> <пароль>")
		}
		creds := models.Credentials{Username: os.Args[2], Password: os.Args[3]}
		if err := a.Login(ctx, creds); err != nil {
			log.Fatalf("Вход не выполнен: %s", a.Session.Err())
		}
		fmt.Printf("Вошли как %s\n", a.Session.User().Username)

	case "logout":
		a.Logout()
		fmt.Println("Сессия снята.")

	case "whoami":
		u := a.Session.User()
		if u == nil {
			fmt.Println("Сессии нет.")
			return
		}
		fmt.Printf("%s (id=%d)\n", u.Username, u.ID)
		if exp, ok := a.Session.TokenExpiry(); ok {
			fmt.Printf("токен действует до %s\n", exp.Format(time.RFC3339))
		}

	case "students":
		must(a.FetchStudents(ctx), a.Students.Snapshot().Err)
		for _, s := range a.Students.Snapshot().Items {
			fmt.Printf("%d\t%s\n", s.ID, s.FullName())
		}

	case "grades":
		must(a.FetchGrades(ctx), a.Grades.Snapshot().Err)
		for _, g := range a.Grades.Snapshot().Items {
			fmt.Printf("%d\t%s\n", g.ID, g.Name)
		}

	case "sections":
		must(a.FetchSections(ctx), a.Sections.Snapshot().Err)
		for _, s := range a.Sections.Snapshot().Items {
			fmt.Printf("%d\t%s\n", s.ID, s.Name)
		}

	case "schedules":
		if len(os.Args) == 3 {
			id, err := strconv.ParseInt(os.Args[2], 10, 64)
			if err != nil {
				log.Fatalf("плохой id секции: %v", err)
			}
			a.Schedules.SetFilters(map[string]string{"section": os.Args[2]})
			a.Schedules.SelectSection(&models.Section{ID: id})
		}
		must(a.FetchSchedules(ctx), a.Schedules.Snapshot().Err)
		for _, s := range a.Schedules.Snapshot().Items {
			fmt.Printf("%s\t%s-%s\n", s.Day, s.StartTime, s.EndTime)
		}

	case "visits":
		must(a.FetchVisits(ctx), a.Visits.Snapshot().Err)
		for _, v := range a.Visits.Snapshot().Items {
			fmt.Printf("%d\t%s\t%s\n", v.ID, v.Name, v.Phone)
		}

	case "export-students":
		if len(os.Args) != 3 {
			log.Fatal("использование: schooladmin export-students <файл.xlsx>")
		}
		must(a.FetchStudents(ctx), a.Students.Snapshot().Err)
		wb, err := export.StudentsWorkbook(a.Students.Snapshot().Items)
		if err != nil {
			log.Fatalf("Экспорт не удался: %v", err)
		}
		if err := wb.SaveAs(os.Args[2]); err != nil {
			log.Fatalf("Не удалось сохранить %s: %v", os.Args[2], err)
		}
		fmt.Printf("Сохранено: %s\n", os.Args[2])

	case "serve":
		serve(cfg, a, lg)

	default:
		usage()
		os.Exit(2)
	}
}

// serve — долгоживущий режим: служебный HTTP и фоновые опросы.
func serve(cfg *config.Config, a *app.App, lg *logging.Log) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.StartHTTP(ctx, cfg.HTTPAddr, cfg.APIBaseURL)
	r := jobs.New(ctx, lg.Named("jobs"))
	jobs.WatchVisits(r, a, 5*time.Minute)
	jobs.WatchToken(r, a, time.Minute)

	lg.Sugar.Infow("служебный сервер запущен", "addr", cfg.HTTPAddr)
	<-ctx.Done()
	lg.Sugar.Info("остановка")
}

func must(err error, banner string) {
	if err != nil {
		if banner != "" {
			log.Fatal(banner)
		}
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println(`использование: schooladmin <команда>

  login <логин> <пароль>   войти и сохранить сессию
  logout                   снять сессию
  whoami                   текущий пользователь
  students                 список учеников
  grades                   список классов
  sections                 список секций
  schedules [секция]       расписание (всё или одной секции)
  visits                   заявки на посещение
  export-students <файл>   выгрузка учеников в xlsx
  serve                    служебный режим (/healthz, /metrics, фоновые опросы)`)
}
