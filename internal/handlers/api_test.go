package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chris-kelly1/WeDo/internal/handlers"
	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/pdf"
	"github.com/chris-kelly1/WeDo/internal/repositories"
	"github.com/chris-kelly1/WeDo/internal/routes"
	"github.com/chris-kelly1/WeDo/internal/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := repositories.NewMemory()
	userService := services.NewUserService(mem.Users, nil)
	taskService := services.NewTaskService(mem.Tasks)
	friendService := services.NewFriendService(mem.Friends, mem.Users, mem.Tasks, mem.Notifications)
	notificationService := services.NewNotificationService(mem.Notifications)
	groupService := services.NewGroupService(mem.Groups, mem.Tasks, mem.Users)
	statsService := services.NewStatsService(mem.Tasks, mem.Users)
	reportService := services.NewReportService(mem.Users, mem.Tasks, pdf.NewTaskReportGenerator())

	router := gin.New()
	return routes.SetupRoutes(
		router,
		handlers.NewUserHandler(userService),
		handlers.NewTaskHandler(taskService),
		handlers.NewFriendHandler(friendService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewGroupHandler(groupService),
		handlers.NewStatsHandler(statsService),
		handlers.NewReportHandler(reportService),
	), mem
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func createUser(t *testing.T, mem *repositories.Memory, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "password123", Email: username + "@example.com", Name: username}
	if err := mem.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestCreateUserStripsPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"username": "sophia",
		"password": "password123",
		"email":    "sophia@example.com",
		"name":     "Sophia Chen",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body map[string]any
	decode(t, w, &body)
	if _, leaked := body["password"]; leaked {
		t.Error("password present in response body")
	}
	if body["username"] != "sophia" {
		t.Errorf("username = %v", body["username"])
	}
	if body["streak"] != float64(0) {
		t.Errorf("streak = %v, want 0", body["streak"])
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{"username": "nopassword"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["message"] != "User not found" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestCreateTaskIgnoresClientCompleted(t *testing.T) {
	router, mem := newTestRouter(t)
	user := createUser(t, mem, "worker")

	w := doJSON(t, router, http.MethodPost, "/api/tasks", gin.H{
		"userId":    user.ID,
		"title":     "Ship release",
		"dueDate":   "2026-09-01",
		"completed": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var task models.Task
	decode(t, w, &task)
	if task.Completed {
		t.Error("server accepted client-supplied completed=true")
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want default medium", task.Priority)
	}
}

func TestDeleteTaskAlwaysSucceeds(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/tasks/12345", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even for unknown ids", w.Code)
	}
	var body map[string]any
	decode(t, w, &body)
	if body["success"] != true {
		t.Errorf("body = %v, want success:true", body)
	}
}

func TestTaskListRequiresUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["message"] != "User ID is required" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestPatchTaskReflectsInTodayStats(t *testing.T) {
	router, mem := newTestRouter(t)
	user := createUser(t, mem, "worker")

	today := time.Now().Format("2006-01-02")
	var task models.Task
	w := doJSON(t, router, http.MethodPost, "/api/tasks", gin.H{
		"userId":  user.ID,
		"title":   "Morning run",
		"dueDate": today,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	decode(t, w, &task)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", task.ID), gin.H{"completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/stats/today?userId=%d", user.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	var stats models.DailyStats
	decode(t, w, &stats)
	if stats.CompletedTasks != 1 || stats.TotalTasks != 1 || stats.Progress != 100 {
		t.Errorf("stats = %+v, want 1/1 at 100%%", stats)
	}
}

func TestAddFriendFlow(t *testing.T) {
	router, mem := newTestRouter(t)
	me := createUser(t, mem, "me")
	pal := createUser(t, mem, "pal")

	w := doJSON(t, router, http.MethodPost, "/api/friends", gin.H{
		"userId":   me.ID,
		"friendId": pal.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add friend status = %d, body = %s", w.Code, w.Body.String())
	}

	// the friend shows up with a progress figure
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/friends?userId=%d", me.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list friends status = %d", w.Code)
	}
	var friends []models.FriendWithProgress
	decode(t, w, &friends)
	if len(friends) != 1 || friends[0].ID != pal.ID {
		t.Fatalf("friends = %+v", friends)
	}

	// and the add produced a notification, newest first
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/notifications?userId=%d", me.ID), nil)
	var notifications []models.Notification
	decode(t, w, &notifications)
	if len(notifications) != 1 || notifications[0].Type != models.NotificationFriendActivity {
		t.Fatalf("notifications = %+v", notifications)
	}
}

func TestRemoveFriendNotFound(t *testing.T) {
	router, mem := newTestRouter(t)
	me := createUser(t, mem, "me")

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/friends/42?userId=%d", me.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for missing friendship", w.Code)
	}
}

func TestGroupLifecycle(t *testing.T) {
	router, mem := newTestRouter(t)
	creator := createUser(t, mem, "creator")
	member := createUser(t, mem, "member")

	var group models.Group
	w := doJSON(t, router, http.MethodPost, "/api/groups", gin.H{
		"name":      "Book club",
		"goalDate":  "2026-12-31",
		"createdBy": creator.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create group status = %d, body = %s", w.Code, w.Body.String())
	}
	decode(t, w, &group)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/groups/%d/members", group.ID), gin.H{
		"userId": member.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add member status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/groups/%d/members", group.ID), nil)
	var members []models.GroupMemberInfo
	decode(t, w, &members)
	if len(members) != 2 {
		t.Fatalf("got %d members, want creator + added member", len(members))
	}
	if members[0].Role != models.RoleAdmin || members[0].UserID != creator.ID {
		t.Errorf("first member = %+v, want creator as admin", members[0].GroupMember)
	}

	// both users see the group in their list
	for _, u := range []*models.User{creator, member} {
		w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/groups?userId=%d", u.ID), nil)
		var groups []models.Group
		decode(t, w, &groups)
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("user %d groups = %+v", u.ID, groups)
		}
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/groups/%d/members/%d", group.ID, member.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove member status = %d", w.Code)
	}
}

func TestAddMemberUnknownGroup(t *testing.T) {
	router, mem := newTestRouter(t)
	user := createUser(t, mem, "lonely")

	w := doJSON(t, router, http.MethodPost, "/api/groups/999/members", gin.H{"userId": user.ID})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for unknown group", w.Code)
	}
}

func TestNotificationMarkReadAndDelete(t *testing.T) {
	router, mem := newTestRouter(t)
	user := createUser(t, mem, "reader")

	n := &models.Notification{UserID: user.ID, Title: "hello", Type: models.NotificationSystem, CreatedAt: time.Now()}
	if err := mem.Notifications.Store(context.Background(), n); err != nil {
		t.Fatalf("Store: %v", err)
	}

	w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", n.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mark read status = %d", w.Code)
	}
	var updated models.Notification
	decode(t, w, &updated)
	if !updated.Read {
		t.Error("notification not marked read")
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", n.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", n.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}

func TestComparisonEndpointShape(t *testing.T) {
	router, mem := newTestRouter(t)
	me := createUser(t, mem, "me")
	pal := createUser(t, mem, "pal")

	ctx := context.Background()
	for _, task := range []models.Task{
		{UserID: me.ID, Title: "mine", DueDate: time.Now(), Priority: models.PriorityHigh, Completed: true},
		{UserID: pal.ID, Title: "shared", DueDate: time.Now(), Priority: models.PriorityLow, Completed: true},
		{UserID: pal.ID, Title: "secret", DueDate: time.Now(), Priority: models.PriorityLow, Private: true},
	} {
		task := task
		if err := mem.Tasks.Store(ctx, &task); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	w := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/friends/%d/comparison?userId=%d", pal.ID, me.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var comparison models.FriendComparison
	decode(t, w, &comparison)
	if len(comparison.UserTasks) != 1 || len(comparison.FriendTasks) != 1 {
		t.Fatalf("tasks = %d/%d, want 1 each (friend's private hidden)",
			len(comparison.UserTasks), len(comparison.FriendTasks))
	}
	if comparison.UserStats.ByPriority["high"] != 1 {
		t.Errorf("userStats.byPriority = %v", comparison.UserStats.ByPriority)
	}
	if comparison.FriendStats.Total != 1 {
		t.Errorf("friendStats = %+v, want total 1", comparison.FriendStats)
	}
}

func TestTaskReportEndpoint(t *testing.T) {
	router, mem := newTestRouter(t)
	user := createUser(t, mem, "reporter")

	if err := mem.Tasks.Store(context.Background(), &models.Task{
		UserID: user.ID, Title: "documented", DueDate: time.Now(), Priority: models.PriorityMedium,
	}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/reports/tasks?userId=%d", user.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("response is not a PDF document")
	}

	w = doJSON(t, router, http.MethodGet, "/api/reports/tasks?userId=999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user status = %d, want 404", w.Code)
	}
}
