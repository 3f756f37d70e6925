package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"

	"github.com/workforce-api/internal/auth"
	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/handler"
	"github.com/workforce-api/internal/service"
)

type mockEmployeeRepo struct {
	employees   []domain.Employee
	commuteRepo *mockCommuteRepo
	orderRepo   *mockOrderingRepo
}

func (m *mockEmployeeRepo) Save(ctx context.Context, emp *domain.Employee) error {
	for i := range m.employees {
		if m.employees[i].Key() == emp.Key() {
			m.employees[i] = *emp
			return nil
		}
	}
	m.employees = append(m.employees, *emp)
	return nil
}

func (m *mockEmployeeRepo) FindByKey(ctx context.Context, key domain.EmployeeKey) (*domain.Employee, error) {
	if key.EmployeeID == "" || key.EmployeeName == "" {
		return nil, domain.ErrInvalidKey
	}
	for i := range m.employees {
		if m.employees[i].Key() == key {
			emp := m.employees[i]
			return &emp, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidKey
	}
	var matches []domain.Employee
	for _, emp := range m.employees {
		if emp.EmployeeID == employeeID {
			matches = append(matches, emp)
		}
	}
	if len(matches) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].EmployeeName < matches[j].EmployeeName })
	return &matches[0], nil
}

func (m *mockEmployeeRepo) FindAll(ctx context.Context) ([]domain.Employee, error) {
	return append([]domain.Employee{}, m.employees...), nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, key domain.EmployeeKey) error {
	for i := range m.employees {
		if m.employees[i].Key() == key {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			m.commuteRepo.deleteByOwner(key)
			m.orderRepo.deleteByOwner(key)
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

func (m *mockEmployeeRepo) ExistsByKey(ctx context.Context, key domain.EmployeeKey) (bool, error) {
	for _, emp := range m.employees {
		if emp.Key() == key {
			return true, nil
		}
	}
	return false, nil
}

type mockCommuteRepo struct {
	commutes []domain.Commute
}

func (m *mockCommuteRepo) Save(ctx context.Context, commute *domain.Commute) error {
	for i := range m.commutes {
		if m.commutes[i].Key().Equal(commute.Key()) {
			m.commutes[i] = *commute
			return nil
		}
	}
	m.commutes = append(m.commutes, *commute)
	return nil
}

func (m *mockCommuteRepo) FindByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) ([]domain.Commute, error) {
	result := []domain.Commute{}
	if employeeID == "" || day.IsZero() {
		return result, nil
	}
	for _, c := range m.commutes {
		if c.EmployeeID == employeeID && c.CommuteDay.Equal(day) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCommuteRepo) FindByEmployeeIDAndDayRange(ctx context.Context, employeeID string, start, end domain.Date) ([]domain.Commute, error) {
	result := []domain.Commute{}
	if employeeID == "" {
		return result, nil
	}
	for _, c := range m.commutes {
		if c.EmployeeID != employeeID {
			continue
		}
		if c.CommuteDay.Before(start) || end.Before(c.CommuteDay) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *mockCommuteRepo) FindMostRecent(ctx context.Context, employeeID, employeeName string) (*domain.Commute, error) {
	if employeeID == "" || employeeName == "" {
		return nil, domain.ErrInvalidKey
	}
	var best *domain.Commute
	for i := range m.commutes {
		c := m.commutes[i]
		if c.EmployeeID != employeeID || c.EmployeeName != employeeName {
			continue
		}
		if best == nil || best.CommuteDay.Before(c.CommuteDay) {
			best = &m.commutes[i]
		}
	}
	if best == nil {
		return nil, domain.ErrCommuteNotFound
	}
	found := *best
	return &found, nil
}

func (m *mockCommuteRepo) deleteByOwner(key domain.EmployeeKey) {
	kept := m.commutes[:0]
	for _, c := range m.commutes {
		if c.EmployeeID != key.EmployeeID || c.EmployeeName != key.EmployeeName {
			kept = append(kept, c)
		}
	}
	m.commutes = kept
}

type mockOrderingRepo struct {
	orders []domain.Ordering
}

func (m *mockOrderingRepo) Save(ctx context.Context, order *domain.Ordering) error {
	for i := range m.orders {
		if m.orders[i].Key().Equal(order.Key()) {
			m.orders[i] = *order
			return nil
		}
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderingRepo) FindByEmployeeID(ctx context.Context, employeeID string) ([]domain.Ordering, error) {
	result := []domain.Ordering{}
	for _, o := range m.orders {
		if o.EmployeeID == employeeID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockOrderingRepo) FindByEmployeeIDOrderByDayDesc(ctx context.Context, employeeID string) ([]domain.Ordering, error) {
	result, _ := m.FindByEmployeeID(ctx, employeeID)
	sort.Slice(result, func(i, j int) bool { return result[j].OrderingDay.Before(result[i].OrderingDay) })
	return result, nil
}

func (m *mockOrderingRepo) FindByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) ([]domain.Ordering, error) {
	result := []domain.Ordering{}
	for _, o := range m.orders {
		if o.EmployeeID == employeeID && o.OrderingDay.Equal(day) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockOrderingRepo) DeleteByEmployeeIDAndDay(ctx context.Context, employeeID string, day domain.Date) error {
	if employeeID == "" || day.IsZero() {
		return domain.ErrInvalidKey
	}
	kept := m.orders[:0]
	for _, o := range m.orders {
		if o.EmployeeID != employeeID || !o.OrderingDay.Equal(day) {
			kept = append(kept, o)
		}
	}
	m.orders = kept
	return nil
}

func (m *mockOrderingRepo) deleteByOwner(key domain.EmployeeKey) {
	kept := m.orders[:0]
	for _, o := range m.orders {
		if o.EmployeeID != key.EmployeeID || o.EmployeeName != key.EmployeeName {
			kept = append(kept, o)
		}
	}
	m.orders = kept
}

type mockGoodsRepo struct {
	goods []domain.Goods
}

func (m *mockGoodsRepo) Save(ctx context.Context, goods *domain.Goods) error {
	for _, g := range m.goods {
		if g.Key() == goods.Key() {
			return nil
		}
	}
	m.goods = append(m.goods, *goods)
	return nil
}

func (m *mockGoodsRepo) FindAll(ctx context.Context) ([]domain.Goods, error) {
	return append([]domain.Goods{}, m.goods...), nil
}

func (m *mockGoodsRepo) FindByBarcode(ctx context.Context, barcode string) ([]domain.Goods, error) {
	result := []domain.Goods{}
	for _, g := range m.goods {
		if g.Barcode == barcode {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GoodsName < result[j].GoodsName })
	return result, nil
}

func (m *mockGoodsRepo) Delete(ctx context.Context, key domain.GoodsKey) error {
	for i := range m.goods {
		if m.goods[i].Key() == key {
			m.goods = append(m.goods[:i], m.goods[i+1:]...)
			return nil
		}
	}
	return domain.ErrGoodsNotFound
}

func (m *mockGoodsRepo) Replace(ctx context.Context, oldKey domain.GoodsKey, goods *domain.Goods) error {
	if err := m.Delete(ctx, oldKey); err != nil {
		return err
	}
	return m.Save(ctx, goods)
}

func (m *mockGoodsRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.goods)), nil
}

func (m *mockGoodsRepo) ExistsByKey(ctx context.Context, key domain.GoodsKey) (bool, error) {
	for _, g := range m.goods {
		if g.Key() == key {
			return true, nil
		}
	}
	return false, nil
}

type mockWorkPlaceRepo struct {
	workPlaces []domain.WorkPlace
}

func (m *mockWorkPlaceRepo) Save(ctx context.Context, workPlace *domain.WorkPlace) error {
	for i := range m.workPlaces {
		if m.workPlaces[i].WorkPlaceName == workPlace.WorkPlaceName {
			m.workPlaces[i] = *workPlace
			return nil
		}
	}
	m.workPlaces = append(m.workPlaces, *workPlace)
	return nil
}

func (m *mockWorkPlaceRepo) FindByName(ctx context.Context, name string) (*domain.WorkPlace, error) {
	if name == "" {
		return nil, domain.ErrInvalidKey
	}
	for _, wp := range m.workPlaces {
		if wp.WorkPlaceName == name {
			found := wp
			return &found, nil
		}
	}
	return nil, domain.ErrWorkPlaceNotFound
}

func (m *mockWorkPlaceRepo) FindAll(ctx context.Context) ([]domain.WorkPlace, error) {
	return append([]domain.WorkPlace{}, m.workPlaces...), nil
}

func (m *mockWorkPlaceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.workPlaces)), nil
}

type testServer struct {
	server        *httptest.Server
	empRepo       *mockEmployeeRepo
	commuteRepo   *mockCommuteRepo
	orderRepo     *mockOrderingRepo
	goodsRepo     *mockGoodsRepo
	workPlaceRepo *mockWorkPlaceRepo
}

func setupTestServer(_ *testing.T) *testServer {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	commuteRepo := &mockCommuteRepo{}
	orderRepo := &mockOrderingRepo{}
	empRepo := &mockEmployeeRepo{commuteRepo: commuteRepo, orderRepo: orderRepo}
	goodsRepo := &mockGoodsRepo{}
	workPlaceRepo := &mockWorkPlaceRepo{}

	empHandler := handler.NewEmployeeHandler(service.NewEmployeeService(empRepo), logger)
	commuteHandler := handler.NewCommuteHandler(service.NewCommuteService(commuteRepo), logger)
	goodsHandler := handler.NewGoodsHandler(service.NewGoodsService(goodsRepo), logger)
	orderHandler := handler.NewOrderingHandler(service.NewOrderingService(orderRepo), logger)
	workPlaceHandler := handler.NewWorkPlaceHandler(service.NewWorkPlaceService(workPlaceRepo), logger)

	router := handler.NewRouter(empHandler, commuteHandler, goodsHandler, orderHandler, workPlaceHandler, logger)

	return &testServer{
		server:        httptest.NewServer(router.Setup()),
		empRepo:       empRepo,
		commuteRepo:   commuteRepo,
		orderRepo:     orderRepo,
		goodsRepo:     goodsRepo,
		workPlaceRepo: workPlaceRepo,
	}
}

func (ts *testServer) Close() {
	ts.server.Close()
}

func postJSON(url string, body map[string]any) (*http.Response, error) {
	data, _ := json.Marshal(body)
	return http.Post(url, "application/json", bytes.NewBuffer(data))
}

func putJSON(url string, body map[string]any) (*http.Response, error) {
	data, _ := json.Marshal(body)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func deleteRequest(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}
	return http.DefaultClient.Do(req)
}

func mustPost(t *testing.T, url string, body map[string]any) {
	t.Helper()
	resp, err := postJSON(url, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}
	resp.Body.Close()
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestLogin_Success(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123",
	})

	resp, err := postJSON(ts.server.URL+"/api/login", map[string]any{
		"employeeId": "E1", "password": "secret123",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var emp domain.Employee
	decodeBody(t, resp, &emp)
	if emp.EmployeeID != "E1" {
		t.Errorf("expected employeeId 'E1', got '%s'", emp.EmployeeID)
	}
	if emp.EmployeePwd == "secret123" {
		t.Error("response must never contain the plaintext password")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123",
	})

	resp, err := postJSON(ts.server.URL+"/api/login", map[string]any{
		"employeeId": "E1", "password": "wrong",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Password mismatch" {
		t.Errorf("expected body 'Password mismatch', got '%s'", string(body))
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/api/login", map[string]any{
		"employeeId": "ghost", "password": "whatever",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "User not found" {
		t.Errorf("expected body 'User not found', got '%s'", string(body))
	}
}

func TestCreateEmployee_HashesPassword(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123",
	})

	stored := ts.empRepo.employees[0]
	if stored.EmployeePwd == "secret123" {
		t.Fatal("stored password must be hashed")
	}
	if !auth.VerifyPassword("secret123", stored.EmployeePwd) {
		t.Error("stored hash must verify against the original password")
	}
}

func TestCreateEmployee_MissingFields(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/api/employees", map[string]any{"employeeId": "E1"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetEmployee_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/employees/ghost")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestUpdateEmployee_KeepsPasswordWhenEmpty(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123",
	})
	originalHash := ts.empRepo.employees[0].EmployeePwd

	resp, err := putJSON(ts.server.URL+"/api/employees/E1", map[string]any{
		"phoneNum": "010-9999", "employeePwd": "",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	stored := ts.empRepo.employees[0]
	if stored.EmployeePwd != originalHash {
		t.Error("empty password in update must leave the stored hash untouched")
	}
	if stored.PhoneNum != "010-9999" {
		t.Errorf("expected phoneNum '010-9999', got '%s'", stored.PhoneNum)
	}
}

func TestUpdateEmployee_RehashesNewPassword(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123",
	})
	originalHash := ts.empRepo.employees[0].EmployeePwd

	resp, err := putJSON(ts.server.URL+"/api/employees/E1", map[string]any{
		"employeePwd": "newsecret",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	stored := ts.empRepo.employees[0]
	if stored.EmployeePwd == originalHash {
		t.Error("new password must be rehashed")
	}
	if !auth.VerifyPassword("newsecret", stored.EmployeePwd) {
		t.Error("stored hash must verify against the new password")
	}
}

func TestDeleteEmployee_Cascades(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123",
	})

	today := domain.Today()
	ts.commuteRepo.commutes = append(ts.commuteRepo.commutes, domain.Commute{
		CommuteDay: today, EmployeeID: "E1", EmployeeName: "Kim",
	})
	ts.orderRepo.orders = append(ts.orderRepo.orders, domain.Ordering{
		OrderingDay: today, EmployeeID: "E1", Barcode: "880001", EmployeeName: "Kim",
	})

	resp, err := deleteRequest(ts.server.URL + "/api/employees/E1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if len(ts.empRepo.employees) != 0 {
		t.Error("employee must be deleted")
	}
	if len(ts.commuteRepo.commutes) != 0 {
		t.Error("owned commutes must be deleted with the employee")
	}
	if len(ts.orderRepo.orders) != 0 {
		t.Error("owned orders must be deleted with the employee")
	}
}

func TestEmployeeCount(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "pw",
	})
	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E2", "employeeName": "Lee", "employeePwd": "pw",
	})

	resp, err := http.Get(ts.server.URL + "/api/employees/count")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var count int64
	decodeBody(t, resp, &count)
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
}

func TestClockInOutLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	today := domain.Today().String()
	mustPost(t, ts.server.URL+"/api/commute/clock-in", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "workPlaceName": "HQ",
		"commuteDay": today, "startTime": "09:00",
	})

	resp, err := http.Get(ts.server.URL + "/api/commute/today?employeeId=E1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var open domain.Commute
	decodeBody(t, resp, &open)
	resp.Body.Close()

	if open.StartTime == nil || open.StartTime.String() != "09:00:00" {
		t.Errorf("expected startTime '09:00:00', got %v", open.StartTime)
	}
	if open.EndTime != nil {
		t.Errorf("endTime must be absent before clock-out, got %v", open.EndTime)
	}

	resp, err = putJSON(ts.server.URL+"/api/commute/clock-out", map[string]any{
		"employeeId": "E1", "endTime": "18:00",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	resp, err = http.Get(ts.server.URL + "/api/commute/today?employeeId=E1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var closed domain.Commute
	decodeBody(t, resp, &closed)
	resp.Body.Close()

	if closed.EndTime == nil || closed.EndTime.String() != "18:00:00" {
		t.Errorf("expected endTime '18:00:00', got %v", closed.EndTime)
	}
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := putJSON(ts.server.URL+"/api/commute/clock-out", map[string]any{
		"employeeId": "E1", "endTime": "18:00",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
	if len(ts.commuteRepo.commutes) != 0 {
		t.Error("clock-out without an open record must not write anything")
	}
}

func TestCommuteToday_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/commute/today?employeeId=E1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestMonthlyBoundaries(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	for _, day := range []string{"2024-01-01", "2024-01-31", "2024-02-01"} {
		d, _ := domain.ParseDate(day)
		ts.commuteRepo.commutes = append(ts.commuteRepo.commutes, domain.Commute{
			CommuteDay: d, EmployeeID: "E1", EmployeeName: "Kim",
		})
	}

	resp, err := http.Get(ts.server.URL + "/api/commute/monthly?employeeId=E1&year=2024&month=1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var commutes []domain.Commute
	decodeBody(t, resp, &commutes)
	if len(commutes) != 2 {
		t.Fatalf("expected 2 commutes within january, got %d", len(commutes))
	}
	for _, c := range commutes {
		if c.CommuteDay.String() == "2024-02-01" {
			t.Error("february record must be excluded from january query")
		}
	}
}

func TestMonthly_InvalidMonth(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/commute/monthly?employeeId=E1&year=2024&month=13")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestRecentCommute(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	for _, day := range []string{"2024-01-10", "2024-01-12", "2024-01-11"} {
		d, _ := domain.ParseDate(day)
		ts.commuteRepo.commutes = append(ts.commuteRepo.commutes, domain.Commute{
			CommuteDay: d, EmployeeID: "E1", EmployeeName: "Kim",
		})
	}

	resp, err := http.Get(ts.server.URL + "/api/commute/recent?employeeId=E1&employeeName=Kim")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var recent domain.Commute
	decodeBody(t, resp, &recent)
	if recent.CommuteDay.String() != "2024-01-12" {
		t.Errorf("expected most recent day '2024-01-12', got '%s'", recent.CommuteDay)
	}
}

func TestRecentCommute_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/commute/recent?employeeId=E1&employeeName=Kim")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestCreateOrder_DayAssignedByServer(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	// клиентская дата в теле игнорируется целиком
	resp, err := postJSON(ts.server.URL+"/api/orders", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "barcode": "880001",
		"boxNum": 3, "goodsName": "Milk", "orderingDay": "2000-01-01",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var order domain.Ordering
	decodeBody(t, resp, &order)
	if !order.OrderingDay.Equal(domain.Today()) {
		t.Errorf("orderingDay must be the server's current date, got '%s'", order.OrderingDay)
	}
}

func TestDeleteOrders_TargetsTodayOnly(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	oldDay, _ := domain.ParseDate("2020-01-01")
	ts.orderRepo.orders = append(ts.orderRepo.orders, domain.Ordering{
		OrderingDay: oldDay, EmployeeID: "E1", Barcode: "880001", BoxNum: 1,
	})
	ts.orderRepo.orders = append(ts.orderRepo.orders, domain.Ordering{
		OrderingDay: domain.Today(), EmployeeID: "E1", Barcode: "880002", BoxNum: 2,
	})

	resp, err := deleteRequest(ts.server.URL + "/api/orders?employeeId=E1&date=2020-01-01")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if len(ts.orderRepo.orders) != 1 {
		t.Fatalf("expected 1 remaining order, got %d", len(ts.orderRepo.orders))
	}
	if !ts.orderRepo.orders[0].OrderingDay.Equal(oldDay) {
		t.Error("the date parameter must be ignored: only today's rows are deleted")
	}
}

func TestGetOrders_DayDescending(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	for i, day := range []string{"2024-03-01", "2024-03-03", "2024-03-02"} {
		d, _ := domain.ParseDate(day)
		ts.orderRepo.orders = append(ts.orderRepo.orders, domain.Ordering{
			OrderingDay: d, EmployeeID: "E1", Barcode: "88000" + string(rune('1'+i)), BoxNum: 1,
		})
	}

	resp, err := http.Get(ts.server.URL + "/api/orders?employeeId=E1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var orders []domain.Ordering
	decodeBody(t, resp, &orders)
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	if orders[0].OrderingDay.String() != "2024-03-03" {
		t.Errorf("expected newest order first, got '%s'", orders[0].OrderingDay)
	}
}

func TestOrderDetailsByDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	target, _ := domain.ParseDate("2024-03-02")
	other, _ := domain.ParseDate("2024-03-03")
	ts.orderRepo.orders = append(ts.orderRepo.orders,
		domain.Ordering{OrderingDay: target, EmployeeID: "E1", Barcode: "880001", BoxNum: 1},
		domain.Ordering{OrderingDay: other, EmployeeID: "E1", Barcode: "880002", BoxNum: 2},
	)

	resp, err := http.Get(ts.server.URL + "/api/orders/details?employeeId=E1&date=2024-03-02")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var orders []domain.Ordering
	decodeBody(t, resp, &orders)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Barcode != "880001" {
		t.Errorf("expected barcode '880001', got '%s'", orders[0].Barcode)
	}
}

func TestOrderDetails_BadDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/orders/details?employeeId=E1&date=garbage")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGoodsUpdateByBarcode_FirstMatch(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/goods", map[string]any{"barcode": "880001", "goodsName": "Milk 1L"})
	mustPost(t, ts.server.URL+"/api/goods", map[string]any{"barcode": "880001", "goodsName": "Milk"})

	resp, err := putJSON(ts.server.URL+"/api/goods/880001", map[string]any{"goodsName": "Fresh Milk"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	names := map[string]bool{}
	for _, g := range ts.goodsRepo.goods {
		names[g.GoodsName] = true
	}
	if !names["Fresh Milk"] || !names["Milk 1L"] || names["Milk"] {
		t.Errorf("first match in name order must be renamed, got %v", names)
	}
}

func TestGoodsDeleteByBarcode(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/goods", map[string]any{"barcode": "880001", "goodsName": "Milk"})

	resp, err := deleteRequest(ts.server.URL + "/api/goods/880001")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	resp, err = deleteRequest(ts.server.URL + "/api/goods/880001")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestGoodsCount(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/goods", map[string]any{"barcode": "880001", "goodsName": "Milk"})
	mustPost(t, ts.server.URL+"/api/goods", map[string]any{"barcode": "880001", "goodsName": "Milk 1L"})

	resp, err := http.Get(ts.server.URL + "/api/goods/count")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var count int64
	decodeBody(t, resp, &count)
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
}

func TestWorkPlaceUpsert(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/workplaces", map[string]any{
		"workPlaceName": "HQ", "latitude": 37.5, "longitude": 127.0,
	})
	mustPost(t, ts.server.URL+"/api/workplaces", map[string]any{
		"workPlaceName": "HQ", "latitude": 35.1, "longitude": 129.0,
	})

	if len(ts.workPlaceRepo.workPlaces) != 1 {
		t.Fatalf("expected a single row after upsert, got %d", len(ts.workPlaceRepo.workPlaces))
	}

	resp, err := http.Get(ts.server.URL + "/api/workplaces/HQ")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var wp domain.WorkPlace
	decodeBody(t, resp, &wp)
	if wp.Latitude != 35.1 || wp.Longitude != 129.0 {
		t.Errorf("expected overwritten coordinates, got %v/%v", wp.Latitude, wp.Longitude)
	}
}

func TestWorkPlace_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/workplaces/nowhere")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestClockIn_InvalidDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/api/commute/clock-in", map[string]any{
		"employeeId": "E1", "employeeName": "Kim",
		"commuteDay": "15.01.2024", "startTime": "09:00",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/api/login")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected %d, got %d", http.StatusMethodNotAllowed, resp.StatusCode)
	}
}

func TestFullWorkflow(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/api/workplaces", map[string]any{
		"workPlaceName": "HQ", "latitude": 37.5, "longitude": 127.0,
	})
	mustPost(t, ts.server.URL+"/api/employees", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "employeePwd": "secret123", "workPlaceName": "HQ",
	})

	resp, _ := postJSON(ts.server.URL+"/api/login", map[string]any{"employeeId": "E1", "password": "secret123"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	mustPost(t, ts.server.URL+"/api/commute/clock-in", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "workPlaceName": "HQ",
		"commuteDay": domain.Today().String(), "startTime": "09:00",
	})

	mustPost(t, ts.server.URL+"/api/orders", map[string]any{
		"employeeId": "E1", "employeeName": "Kim", "barcode": "880001", "boxNum": 2, "goodsName": "Milk",
	})

	resp, _ = putJSON(ts.server.URL+"/api/commute/clock-out", map[string]any{"employeeId": "E1", "endTime": "18:00"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clock-out failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = deleteRequest(ts.server.URL + "/api/orders?employeeId=E1&date=" + domain.Today().String())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("order delete failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = deleteRequest(ts.server.URL + "/api/employees/E1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("employee delete failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	if len(ts.commuteRepo.commutes) != 0 || len(ts.orderRepo.orders) != 0 {
		t.Error("cascade delete must leave no owned records behind")
	}
}
