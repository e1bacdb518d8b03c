// Package api — шлюзы ресурсов: одна функция на одну REST-операцию
// школьного бэкенда. Ошибки не перехватываются и уходят наверх как есть,
// классифицирует их вызывающий контейнер.
package api

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// unwrap разбирает тело ответа, снимая конверт {"data": ...}, если он есть.
func unwrap[T any](raw []byte) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// query собирает строку запроса из известных ключей фильтра;
// пустые и нераспознанные значения не отправляются.
func query(filters map[string]string, keys ...string) url.Values {
	if len(filters) == 0 {
		return nil
	}
	q := url.Values{}
	for _, k := range keys {
		if v := filters[k]; v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return nil
	}
	return q
}
