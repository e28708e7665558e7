package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/auth"
	appprogress "github.com/asxpathway/pathway-api/internal/application/progress"
	apptimeline "github.com/asxpathway/pathway-api/internal/application/timeline"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
	"github.com/asxpathway/pathway-api/internal/domain/timeline"
	apphttp "github.com/asxpathway/pathway-api/internal/interfaces/http"
	"github.com/asxpathway/pathway-api/internal/metrics"
	"github.com/asxpathway/pathway-api/pkg/config"
)

const (
	demoUserID   = "11111111-1111-1111-1111-111111111111"
	demoUsername = "founder_demo"
	demoTaskID   = "22222222-2222-2222-2222-222222222222"
	demoCompany  = "33333333-3333-3333-3333-333333333333"
)

// In-memory fakes for the persistence ports. Only what the handlers under
// test exercise is implemented with real behavior.

type fakeUserRepo struct{ users []*entity.User }

func (f *fakeUserRepo) Create(u *entity.User) error { f.users = append(f.users, u); return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(*entity.User) error { return nil }

type fakeTaskRepo struct{ tasks map[string]*entity.Task }

func (f *fakeTaskRepo) Create(t *entity.Task) error             { f.tasks[t.ID] = t; return nil }
func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) { return f.tasks[id], nil }
func (f *fakeTaskRepo) List(repository.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}
func (f *fakeTaskRepo) Update(*entity.Task) error   { return nil }
func (f *fakeTaskRepo) Delete(string) (bool, error) { return false, nil }

type fakeProgressRepo struct {
	records map[[2]string]*entity.UserProgress
}

func (f *fakeProgressRepo) ListByUser(userID string) ([]*entity.UserProgress, error) {
	out := []*entity.UserProgress{}
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) Upsert(rec *entity.UserProgress) (*entity.UserProgress, error) {
	key := [2]string{rec.UserID, rec.TaskID}
	stored, ok := f.records[key]
	if !ok {
		copied := *rec
		f.records[key] = &copied
		return &copied, nil
	}
	stored.Completed = rec.Completed
	if rec.Completed {
		if stored.CompletedAt == nil {
			stored.CompletedAt = rec.CompletedAt
		}
	} else {
		stored.CompletedAt = nil
	}
	if rec.Notes != nil {
		stored.Notes = rec.Notes
	}
	return stored, nil
}

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) List() ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { return nil }
func (f *fakeCompanyRepo) UpdateTimeline(id string, stage *string, targetDate *time.Time) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	if stage != nil {
		c.ListingStage = *stage
	}
	if targetDate != nil {
		c.TargetListingDate = targetDate
	}
	return c, nil
}

type fakeMeetingRepo struct{ requests []*entity.MeetingRequest }

func (f *fakeMeetingRepo) Create(m *entity.MeetingRequest) error {
	f.requests = append(f.requests, m)
	return nil
}
func (f *fakeMeetingRepo) List(userID string) ([]*entity.MeetingRequest, error) {
	out := []*entity.MeetingRequest{}
	for _, m := range f.requests {
		if userID == "" || m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

// newTestApp wires a Fiber app over in-memory fakes, pre-seeded with one
// user, one task and one company.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	userRepo := &fakeUserRepo{users: []*entity.User{{
		ID: demoUserID, Username: demoUsername, Role: entity.RoleFounder,
	}}}
	taskRepo := &fakeTaskRepo{tasks: map[string]*entity.Task{
		demoTaskID: {ID: demoTaskID, Title: "Prepare Executive Summary"},
	}}
	progressRepo := &fakeProgressRepo{records: map[[2]string]*entity.UserProgress{}}
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		demoCompany: {ID: demoCompany, Name: "GreenTech Innovations Pty Ltd", ListingStage: timeline.StageExploration},
	}}
	meetingRepo := &fakeMeetingRepo{}

	jwtCfg := config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "asx-pathway-test"}
	collector := metrics.NewCollector(prometheus.NewRegistry())

	userUC := usecase.NewUserUseCase(userRepo)
	deps := apphttp.RouterDeps{
		UserUC:         userUC,
		TaskUC:         usecase.NewTaskUseCase(taskRepo),
		CompanyUC:      usecase.NewCompanyUseCase(companyRepo),
		MeetingUC:      usecase.NewMeetingUseCase(meetingRepo, userRepo),
		ProgressUC:     appprogress.NewUseCase(progressRepo, taskRepo),
		TimelineUC:     apptimeline.NewUseCase(companyRepo, false),
		AuthUC:         auth.NewUseCase(userRepo, jwtCfg),
		Collector:      collector,
		JWTSecret:      jwtCfg.Secret,
		AuthRequired:   false,
	}

	app := fiber.New()
	apphttp.Router(app, deps)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
