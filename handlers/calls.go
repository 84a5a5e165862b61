package handlers

import (
	"encoding/json"
	"net/http"

	"plantmaint/config"
	"plantmaint/models"
)

func GetAllCalls(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "status", "machine_id", "shift")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.Call{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var calls []models.Call
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("reported_at DESC").Find(&calls).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, calls)
}

func CreateCall(w http.ResponseWriter, r *http.Request) {
	var call models.Call
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if call.Issue == "" {
		http.Error(w, "issue is required", http.StatusBadRequest)
		return
	}
	if !models.ValidShift(call.Shift) {
		http.Error(w, "shift must be 1, 2 or 3", http.StatusBadRequest)
		return
	}
	if call.Status == "" {
		call.Status = models.CallStatusReported
	}
	if !models.ValidCallStatus(call.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&call).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, call)
}

func GetCall(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var call models.Call
	if err := config.DB.Preload("Machine").First(&call, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "call not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func UpdateCall(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var call models.Call
	if err := config.DB.First(&call, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "call not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var in models.Call
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if in.Shift != 0 && !models.ValidShift(in.Shift) {
		http.Error(w, "shift must be 1, 2 or 3", http.StatusBadRequest)
		return
	}
	if in.Status != "" && !models.ValidCallStatus(in.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	in.ID = call.ID
	if err := config.DB.Model(&call).Updates(in).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func DeleteCall(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.Call{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "call not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
