package models

import "strings"

// Activity / Program — маркетинговый контент лендинга.
// image и videos при чтении приходят путями относительно хранилища,
// при записи уходят multipart-полями.
type Activity struct {
	ID          int64    `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details,omitempty"`
	Image       string   `json:"image,omitempty"`
	Videos      []string `json:"videos,omitempty"`
}

type Program struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
	Image       string `json:"image,omitempty"`
}

type VisitDate struct {
	ID   int64  `json:"id,omitempty"`
	Date string `json:"date"`
}

// Visit — заявка на посещение; клиент её только читает.
type Visit struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	VisitDate int64  `json:"visit_date,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MediaURL превращает относительный путь хранилища в абсолютный URL.
// Уже абсолютные ссылки возвращаются как есть.
func MediaURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
