package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantmaint/models"
)

func TestWorkOrderCRUD(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, manager := newUser(t, db, models.RoleManager)

	var wo models.WorkOrder
	code := doJSON(t, srv, "POST", "/api/v1/work-orders", manager, map[string]interface{}{
		"title":    "Replace hydraulic seal",
		"due_date": "2025-07-01",
	}, &wo)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, models.WorkOrderStatusPending, wo.Status)
	assert.Equal(t, models.PriorityMedium, wo.Priority)

	// enum validation
	code = doJSON(t, srv, "POST", "/api/v1/work-orders", manager, map[string]interface{}{
		"title": "x", "status": "paused",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code = doJSON(t, srv, "POST", "/api/v1/work-orders", manager, map[string]interface{}{
		"title": "x", "priority": "urgent-ish",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = doJSON(t, srv, "PUT", "/api/v1/work-orders/"+wo.ID.String(), manager, map[string]interface{}{
		"status": models.WorkOrderStatusCompleted, "completed_date": "2025-06-20",
	}, nil)
	require.Equal(t, http.StatusOK, code)

	var got models.WorkOrder
	require.NoError(t, db.First(&got, "id = ?", wo.ID).Error)
	assert.Equal(t, models.WorkOrderStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, "2025-06-20", got.CompletedDate.Time().Format("2006-01-02"))
}

func TestWorkOrderLaborFlow(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	tech, token := newUser(t, db, models.RoleTechnician)

	wo := seedWorkOrder(t, db)
	laborPath := fmt.Sprintf("/api/v1/work-orders/%s/labor", wo.ID)

	var entry models.WorkOrderLabor
	code := doJSON(t, srv, "POST", laborPath, token, map[string]interface{}{
		"user_id": tech.ID, "hours_worked": 3.5, "labor_date": "2025-06-20",
	}, &entry)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, wo.ID, entry.WorkOrderID)

	// negative hours rejected
	code = doJSON(t, srv, "POST", laborPath, token, map[string]interface{}{
		"user_id": tech.ID, "hours_worked": -1, "labor_date": "2025-06-20",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// unknown user rejected
	code = doJSON(t, srv, "POST", laborPath, token, map[string]interface{}{
		"user_id": "9f1c2a34-0000-0000-0000-000000000000", "hours_worked": 1,
		"labor_date": "2025-06-20",
	}, nil)
	assert.Equal(t, http.StatusNotFound, code)

	var entries []models.WorkOrderLabor
	code = doJSON(t, srv, "GET", laborPath, token, nil, &entries)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, entries, 1)

	code = doJSON(t, srv, "PUT", "/api/v1/work-order-labor/"+entry.ID.String(), token,
		map[string]interface{}{"hours_worked": 5.0}, &entry)
	require.Equal(t, http.StatusOK, code)

	// zero is a valid correction, not an omitted field
	code = doJSON(t, srv, "PUT", "/api/v1/work-order-labor/"+entry.ID.String(), token,
		map[string]interface{}{"hours_worked": 0}, nil)
	require.Equal(t, http.StatusOK, code)

	var gotEntry models.WorkOrderLabor
	require.NoError(t, db.First(&gotEntry, "id = ?", entry.ID).Error)
	assert.Equal(t, 0.0, gotEntry.HoursWorked)

	code = doJSON(t, srv, "DELETE", "/api/v1/work-order-labor/"+entry.ID.String(), token, nil, nil)
	assert.Equal(t, http.StatusNoContent, code)
}

func TestInventoryValidation(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, manager := newUser(t, db, models.RoleManager)

	code := doJSON(t, srv, "POST", "/api/v1/inventory", manager, map[string]interface{}{
		"name": "Gasket", "quantity": -1,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = doJSON(t, srv, "POST", "/api/v1/inventory", manager, map[string]interface{}{
		"name": "Gasket", "quantity": 5, "unit_price": -0.5,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	var item models.Inventory
	code = doJSON(t, srv, "POST", "/api/v1/inventory", manager, map[string]interface{}{
		"name": "Gasket", "quantity": 5, "unit_price": 2.25,
	}, &item)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 5, item.Quantity)
}

func TestInventoryUpdateAcceptsZero(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, manager := newUser(t, db, models.RoleManager)

	item := seedInventory(t, db, 7)

	// writing quantity and unit_price down to 0 must stick
	code := doJSON(t, srv, "PUT", "/api/v1/inventory/"+item.ID.String(), manager,
		map[string]interface{}{"quantity": 0, "unit_price": 0}, nil)
	require.Equal(t, http.StatusOK, code)

	var got models.Inventory
	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, 0.0, got.UnitPrice)

	// omitted fields stay untouched
	code = doJSON(t, srv, "PUT", "/api/v1/inventory/"+item.ID.String(), manager,
		map[string]interface{}{"description": "refurbished"}, nil)
	require.Equal(t, http.StatusOK, code)

	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, "refurbished", got.Description)

	// negatives still rejected
	code = doJSON(t, srv, "PUT", "/api/v1/inventory/"+item.ID.String(), manager,
		map[string]interface{}{"quantity": -1}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCallLifecycle(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, token := newUser(t, db, models.RoleTechnician)

	// shift outside 1..3
	code := doJSON(t, srv, "POST", "/api/v1/calls", token, map[string]interface{}{
		"shift": 4, "issue": "Conveyor jam", "reported_at": "2025-06-20T06:00:00Z",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	var call models.Call
	code = doJSON(t, srv, "POST", "/api/v1/calls", token, map[string]interface{}{
		"shift": 2, "issue": "Conveyor jam", "reported_at": "2025-06-20T06:00:00Z",
	}, &call)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, models.CallStatusReported, call.Status)

	code = doJSON(t, srv, "PUT", "/api/v1/calls/"+call.ID.String(), token, map[string]interface{}{
		"status": models.CallStatusCompleted, "resolution": "Cleared blockage",
		"completed_at": "2025-06-20T07:15:00Z",
	}, nil)
	require.Equal(t, http.StatusOK, code)

	var got models.Call
	require.NoError(t, db.First(&got, "id = ?", call.ID).Error)
	assert.Equal(t, models.CallStatusCompleted, got.Status)
	require.NotNil(t, got.Resolution)
}
