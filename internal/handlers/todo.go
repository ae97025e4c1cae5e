package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/db"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
)

/*
handles routes:
- GET /todo_list - list all saved to-dos
- POST /todo_list - save a new weekly to-do
*/
func (h *Handler) HandleTodoList(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTodos(w, r)
	case http.MethodPost:
		h.createTodo(w, r)
	default:
		sendMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

/*
routes:
- GET /todo_list/{id}
- PUT /todo_list/{id}
- PATCH /todo_list/{id}
- DELETE /todo_list/{id}
*/
func (h *Handler) HandleTodoByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/todo_list/")
	if idStr == "" {
		sendMessage(w, http.StatusBadRequest, "To-do id is required")
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "To-do id must be a number")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getTodo(w, r, id)
	case http.MethodPut:
		h.replaceTodo(w, r, id)
	case http.MethodPatch:
		h.updateTodoStatus(w, r, id)
	case http.MethodDelete:
		h.deleteTodo(w, r, id)
	default:
		sendMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleNotFound is the fallback for any route the mux does not know.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	sendMessage(w, http.StatusNotFound, "Route not found")
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	todos, err := h.TodoRepo.List(ctx)
	if err != nil {
		log.Printf("Fetch error: %v", err)
		sendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendJSON(w, http.StatusOK, todos)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request, id int64) {
	ctx, cancel := requestContext(r)
	defer cancel()

	todo, err := h.TodoRepo.GetByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		sendMessage(w, http.StatusNotFound, "To-do not found")
		return
	}
	if err != nil {
		log.Printf("Fetch error: %v", err)
		sendMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sendJSON(w, http.StatusOK, todo)
}

// weekInput uses pointer fields so an absent weekday key can be told apart
// from an empty task.
type weekInput struct {
	Monday    *string `json:"monday"`
	Tuesday   *string `json:"tuesday"`
	Wednesday *string `json:"wednesday"`
	Thursday  *string `json:"thursday"`
	Friday    *string `json:"friday"`
}

func (in weekInput) week() (models.Week, bool) {
	if in.Monday == nil || in.Tuesday == nil || in.Wednesday == nil ||
		in.Thursday == nil || in.Friday == nil {
		return models.Week{}, false
	}
	return models.Week{
		Monday:    *in.Monday,
		Tuesday:   *in.Tuesday,
		Wednesday: *in.Wednesday,
		Thursday:  *in.Thursday,
		Friday:    *in.Friday,
	}, true
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	var input weekInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	week, ok := input.week()
	if !ok {
		sendMessage(w, http.StatusBadRequest, "All five weekday tasks are required")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	id, err := h.TodoRepo.Create(ctx, week)
	if err != nil {
		log.Printf("Insert error: %v", err)
		sendMessage(w, http.StatusInternalServerError, "Insert error")
		return
	}
	trackTodoOperation("create")
	h.Hub.Broadcast("todo_added", id, models.StatusNotStarted)
	sendJSON(w, http.StatusCreated, map[string]any{
		"message":  "To-do added",
		"insertId": id,
	})
}

func (h *Handler) replaceTodo(w http.ResponseWriter, r *http.Request, id int64) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var input weekInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	week, ok := input.week()
	if !ok {
		sendMessage(w, http.StatusBadRequest, "All five weekday tasks are required")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err := h.TodoRepo.Replace(ctx, id, week)
	if errors.Is(err, db.ErrNotFound) {
		sendMessage(w, http.StatusNotFound, "To-do not found")
		return
	}
	if err != nil {
		log.Printf("Update error: %v", err)
		sendMessage(w, http.StatusInternalServerError, "Update error")
		return
	}
	trackTodoOperation("replace")
	h.Hub.Broadcast("todo_updated", id, "")
	sendMessage(w, http.StatusOK, "To-do updated")
}

func (h *Handler) updateTodoStatus(w http.ResponseWriter, r *http.Request, id int64) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	status, err := models.ParseStatus(input.Status)
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = h.TodoRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, db.ErrNotFound) {
		sendMessage(w, http.StatusNotFound, "To-do not found")
		return
	}
	if err != nil {
		log.Printf("Update status error: %v", err)
		sendMessage(w, http.StatusInternalServerError, "Update status error")
		return
	}
	trackTodoOperation("status")
	h.Hub.Broadcast("status_updated", id, status)
	sendMessage(w, http.StatusOK, "Status updated")
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request, id int64) {
	ctx, cancel := requestContext(r)
	defer cancel()

	// idempotent: a missing id still reports success
	if err := h.TodoRepo.Delete(ctx, id); err != nil {
		log.Printf("Delete error: %v", err)
		sendMessage(w, http.StatusInternalServerError, "Delete error")
		return
	}
	trackTodoOperation("delete")
	h.Hub.Broadcast("todo_deleted", id, "")
	sendMessage(w, http.StatusOK, "To-do deleted")
}

func requestContext(r *http.Request) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}
