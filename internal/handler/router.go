package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/workforce-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux              *http.ServeMux
	logger           *slog.Logger
	empHandler       *EmployeeHandler
	commuteHandler   *CommuteHandler
	goodsHandler     *GoodsHandler
	orderHandler     *OrderingHandler
	workPlaceHandler *WorkPlaceHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	empHandler *EmployeeHandler,
	commuteHandler *CommuteHandler,
	goodsHandler *GoodsHandler,
	orderHandler *OrderingHandler,
	workPlaceHandler *WorkPlaceHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		logger:           logger,
		empHandler:       empHandler,
		commuteHandler:   commuteHandler,
		goodsHandler:     goodsHandler,
		orderHandler:     orderHandler,
		workPlaceHandler: workPlaceHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики; ресурсы регистрируются и без, и с косой
	// чертой, чтобы избежать редиректа 301 на POST
	r.mux.HandleFunc("/api/login", r.loginRouter)
	r.mux.HandleFunc("/api/employees", r.employeesRouter)
	r.mux.HandleFunc("/api/employees/", r.employeesRouter)
	r.mux.HandleFunc("/api/commute/", r.commuteRouter)
	r.mux.HandleFunc("/api/goods", r.goodsRouter)
	r.mux.HandleFunc("/api/goods/", r.goodsRouter)
	r.mux.HandleFunc("/api/orders", r.ordersRouter)
	r.mux.HandleFunc("/api/orders/", r.ordersRouter)
	r.mux.HandleFunc("/api/workplaces", r.workPlacesRouter)
	r.mux.HandleFunc("/api/workplaces/", r.workPlacesRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) loginRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	r.empHandler.Login(w, req)
}

// employeesRouter обрабатывает все запросы к /api/employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/employees")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetAll(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	case path == "count":
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.empHandler.Count(w, req)
	case !strings.Contains(path, "/"):
		// /api/employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetByID(w, req, path)
		case http.MethodPut:
			r.empHandler.Update(w, req, path)
		case http.MethodDelete:
			r.empHandler.Delete(w, req, path)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// commuteRouter обрабатывает все запросы к /api/commute/
func (r *Router) commuteRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/commute")
	path = strings.Trim(path, "/")

	switch {
	case path == "clock-in" && req.Method == http.MethodPost:
		r.commuteHandler.ClockIn(w, req)
	case path == "clock-out" && req.Method == http.MethodPut:
		r.commuteHandler.ClockOut(w, req)
	case path == "today" && req.Method == http.MethodGet:
		r.commuteHandler.Today(w, req)
	case path == "monthly" && req.Method == http.MethodGet:
		r.commuteHandler.Monthly(w, req)
	case path == "recent" && req.Method == http.MethodGet:
		r.commuteHandler.Recent(w, req)
	case path == "clock-in" || path == "clock-out" || path == "today" || path == "monthly" || path == "recent":
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// goodsRouter обрабатывает все запросы к /api/goods
func (r *Router) goodsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/goods")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		switch req.Method {
		case http.MethodGet:
			r.goodsHandler.GetAll(w, req)
		case http.MethodPost:
			r.goodsHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	case path == "count":
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.goodsHandler.Count(w, req)
	case !strings.Contains(path, "/"):
		// /api/goods/{barcode}
		switch req.Method {
		case http.MethodPut:
			r.goodsHandler.Update(w, req, path)
		case http.MethodDelete:
			r.goodsHandler.Delete(w, req, path)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// ordersRouter обрабатывает все запросы к /api/orders
func (r *Router) ordersRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/orders")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		switch req.Method {
		case http.MethodPost:
			r.orderHandler.Create(w, req)
		case http.MethodGet:
			r.orderHandler.GetByEmployee(w, req)
		case http.MethodDelete:
			r.orderHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	case path == "details":
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.orderHandler.Details(w, req)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// workPlacesRouter обрабатывает все запросы к /api/workplaces
func (r *Router) workPlacesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/workplaces")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		switch req.Method {
		case http.MethodGet:
			r.workPlaceHandler.GetAll(w, req)
		case http.MethodPost:
			r.workPlaceHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	case !strings.Contains(path, "/"):
		// /api/workplaces/{name}
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.workPlaceHandler.GetByName(w, req, path)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}
