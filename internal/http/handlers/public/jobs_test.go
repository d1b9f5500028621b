package public

import (
	"encoding/json"
	"testing"

	"github.com/elverra/zenika-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

func TestJobDetailNotFound(t *testing.T) {
	h := newTestHandler(t)

	w, env := performJSON(t, h.JobDetail, "GET", "/api/jobs/999", "", gin.Params{{Key: "id", Value: "999"}})
	if w.Code != 200 {
		t.Fatalf("error envelopes ride on http 200, got %d", w.Code)
	}
	if env.StatusCode != response.CodeNotFound {
		t.Fatalf("expected status_code %d, got %d", response.CodeNotFound, env.StatusCode)
	}
	if env.Msg != "job not found" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
}

func TestJobDetailBadID(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.JobDetail, "GET", "/api/jobs/abc", "", gin.Params{{Key: "id", Value: "abc"}})
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected status_code %d, got %d", response.CodeBadRequest, env.StatusCode)
	}
}

func TestJobCreateAndList(t *testing.T) {
	h := newTestHandler(t)

	body := `{"title":"Field Agent Coordinator","company_name":"Elverra Global","location":"Bamako","job_type":"full_time","skills":["mobile money","logistics"]}`
	_, env := performJSON(t, h.JobCreate, "POST", "/api/jobs", body, nil)
	if env.StatusCode != 0 {
		t.Fatalf("create job should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}
	var created struct {
		ID        uint   `json:"id"`
		CompanyID uint   `json:"company_id"`
		Title     string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created job failed: %v", err)
	}
	if created.ID == 0 || created.CompanyID == 0 {
		t.Fatalf("expected persisted job and company ids, got job=%d company=%d", created.ID, created.CompanyID)
	}

	_, env = performJSON(t, h.JobList, "GET", "/api/jobs?page=1&page_size=10", "", nil)
	if env.StatusCode != 0 {
		t.Fatalf("list jobs should succeed, got %d", env.StatusCode)
	}
	var jobs []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &jobs); err != nil {
		t.Fatalf("decode job list failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Title != "Field Agent Coordinator" {
		t.Fatalf("unexpected title: %q", jobs[0].Title)
	}
}

func TestRegisterLoginPostJobFlow(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.Register, "POST", "/api/auth/register",
		`{"email":"a@b.com","password":"s3cret-pass","full_name":"A B"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("register should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}

	_, env = performJSON(t, h.Login, "POST", "/api/auth/login",
		`{"email":"a@b.com","password":"s3cret-pass"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("login should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}

	_, env = performJSON(t, h.JobCreate, "POST", "/api/jobs",
		`{"title":"X","company_name":"Elverra Global"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("create job should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}

	_, env = performJSON(t, h.JobList, "GET", "/api/jobs", "", nil)
	if env.StatusCode != 0 {
		t.Fatalf("list jobs should succeed, got %d", env.StatusCode)
	}
	var jobs []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &jobs); err != nil {
		t.Fatalf("decode job list failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "X" {
		t.Fatalf("posted job should be listed, got %+v", jobs)
	}
}

func TestJobApplicationMissingName(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.JobCreate, "POST", "/api/jobs", `{"title":"Support Officer","company_name":"Elverra Global"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("create job should succeed, got %d", env.StatusCode)
	}

	_, env = performJSON(t, h.JobApplicationCreate, "POST", "/api/job-applications", `{"job_id":1,"email":"amina@example.com"}`, nil)
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected status_code %d, got %d", response.CodeBadRequest, env.StatusCode)
	}
	if env.Msg != "name and email are required" {
		t.Fatalf("unexpected msg: %q", env.Msg)
	}
}

func TestJobApplicationUnknownJob(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.JobApplicationCreate, "POST", "/api/job-applications",
		`{"job_id":42,"full_name":"Amina Traore","email":"amina@example.com"}`, nil)
	if env.StatusCode != response.CodeNotFound {
		t.Fatalf("expected status_code %d, got %d", response.CodeNotFound, env.StatusCode)
	}
}

func TestJobApplicationFlow(t *testing.T) {
	h := newTestHandler(t)

	_, env := performJSON(t, h.JobCreate, "POST", "/api/jobs", `{"title":"Support Officer","company_name":"Elverra Global"}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("create job should succeed, got %d", env.StatusCode)
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created job failed: %v", err)
	}

	_, env = performJSON(t, h.JobApplicationCreate, "POST", "/api/job-applications",
		`{"job_id":1,"full_name":"Amina Traore","email":"AMINA@example.com","experience_years":3}`, nil)
	if env.StatusCode != 0 {
		t.Fatalf("apply should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}
	var app struct {
		ID     uint   `json:"id"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &app); err != nil {
		t.Fatalf("decode application failed: %v", err)
	}
	if app.Email != "amina@example.com" {
		t.Fatalf("email should be normalized, got %q", app.Email)
	}
	if app.Status != "pending" {
		t.Fatalf("new application should be pending, got %q", app.Status)
	}

	_, env = performJSON(t, h.JobApplicationUpdateStatus, "PUT", "/api/job-applications/1/status",
		`{"status":"reviewed"}`, gin.Params{{Key: "id", Value: "1"}})
	if env.StatusCode != 0 {
		t.Fatalf("status update should succeed, got %d (msg %q)", env.StatusCode, env.Msg)
	}

	_, env = performJSON(t, h.JobApplicationUpdateStatus, "PUT", "/api/job-applications/1/status",
		`{"status":"archived"}`, gin.Params{{Key: "id", Value: "1"}})
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("unknown status should map to %d, got %d", response.CodeBadRequest, env.StatusCode)
	}
}
