package handlers

import (
	"encoding/json"
	"net/http"

	"plantmaint/config"
	"plantmaint/models"
)

func GetAllWorkOrders(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "status", "priority", "machine_id", "plant_id", "assigned_to")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.WorkOrder{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var orders []models.WorkOrder
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("created_at DESC").Find(&orders).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, orders)
}

func CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	var order models.WorkOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if order.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if order.Status == "" {
		order.Status = models.WorkOrderStatusPending
	}
	if !models.ValidWorkOrderStatus(order.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if order.Priority == "" {
		order.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(order.Priority) {
		http.Error(w, "invalid priority", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&order).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var order models.WorkOrder
	err = config.DB.
		Preload("Machine").
		Preload("Assignee").
		Preload("Parts").
		Preload("Parts.Inventory").
		Preload("Labor").
		First(&order, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			http.Error(w, "work order not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func UpdateWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var order models.WorkOrder
	if err := config.DB.First(&order, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "work order not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var in models.WorkOrder
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if in.Status != "" && !models.ValidWorkOrderStatus(in.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if in.Priority != "" && !models.ValidPriority(in.Priority) {
		http.Error(w, "invalid priority", http.StatusBadRequest)
		return
	}
	in.ID = order.ID
	if err := config.DB.Model(&order).Updates(in).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func DeleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.WorkOrder{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "work order not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
