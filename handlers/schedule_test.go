package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

type fakeScheduleStore struct {
	byClass map[int][]models.ScheduleEntry
	created []models.CreateScheduleRequest
	nextID  int
}

func (f *fakeScheduleStore) ListByClass(_ context.Context, classID int) ([]models.ScheduleEntry, error) {
	entries := f.byClass[classID]
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	return entries, nil
}

func (f *fakeScheduleStore) Create(_ context.Context, entry models.CreateScheduleRequest) (int, error) {
	f.created = append(f.created, entry)
	f.nextID++
	return f.nextID, nil
}

func newScheduleRouter(store *fakeScheduleStore) *gin.Engine {
	r := gin.New()
	h := NewScheduleHandler(store)
	r.GET("/api/schedule", h.List)
	r.POST("/api/schedule", h.Create)
	return r
}

func TestScheduleList(t *testing.T) {
	store := &fakeScheduleStore{byClass: map[int][]models.ScheduleEntry{
		3: {
			{ID: 1, DayOfWeek: 1, TimeStart: strPtr("08:30:00"), TimeEnd: strPtr("09:15:00"), Room: "204", SubjectName: "Математика"},
			{ID: 2, DayOfWeek: 1, TimeStart: strPtr("09:25:00"), TimeEnd: strPtr("10:10:00"), Room: "101", SubjectName: "Физика"},
		},
	}}
	r := newScheduleRouter(store)

	w := performRequest(r, http.MethodGet, "/api/schedule?classId=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeArray(t, w)
	if len(body) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(body))
	}
	if body[0]["timeStart"] != "08:30:00" || body[0]["subjectName"] != "Математика" {
		t.Errorf("unexpected first entry: %v", body[0])
	}
}

func TestScheduleListMissingClassID(t *testing.T) {
	r := newScheduleRouter(&fakeScheduleStore{})

	w := performRequest(r, http.MethodGet, "/api/schedule", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decodeObject(t, w); body["error"] != "classId required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestScheduleListEmpty(t *testing.T) {
	r := newScheduleRouter(&fakeScheduleStore{})

	w := performRequest(r, http.MethodGet, "/api/schedule?classId=3", "")
	if w.Body.String() != "[]" {
		t.Errorf("expected empty array body, got %q", w.Body.String())
	}
}

func TestScheduleCreate(t *testing.T) {
	store := &fakeScheduleStore{}
	r := newScheduleRouter(store)

	w := performRequest(r, http.MethodPost, "/api/schedule",
		`{"classId":3,"subjectId":2,"dayOfWeek":1,"timeStart":"08:30","timeEnd":"09:15","room":"204"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeObject(t, w)
	if body["id"] != float64(1) || body["message"] != "Расписание добавлено" {
		t.Errorf("unexpected response: %v", body)
	}
}

func TestScheduleCreateDefaultRoom(t *testing.T) {
	store := &fakeScheduleStore{}
	r := newScheduleRouter(store)

	w := performRequest(r, http.MethodPost, "/api/schedule",
		`{"classId":3,"subjectId":2,"dayOfWeek":1,"timeStart":"08:30","timeEnd":"09:15"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if store.created[0].Room != "" {
		t.Errorf("expected empty room, got %q", store.created[0].Room)
	}
}

func TestScheduleCreateMissingFields(t *testing.T) {
	cases := map[string]string{
		"no class or subject": `{"dayOfWeek":1,"timeStart":"08:30","timeEnd":"09:15"}`,
		"no dayOfWeek":        `{"classId":3,"subjectId":2,"timeStart":"08:30","timeEnd":"09:15"}`,
		"no timeStart":        `{"classId":3,"subjectId":2,"dayOfWeek":1,"timeEnd":"09:15"}`,
		"no timeEnd":          `{"classId":3,"subjectId":2,"dayOfWeek":1,"timeStart":"08:30"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeScheduleStore{}
			r := newScheduleRouter(store)

			w := performRequest(r, http.MethodPost, "/api/schedule", payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if len(store.created) != 0 {
				t.Error("store must not be touched on validation failure")
			}
		})
	}
}
