package handlers

import (
	"encoding/json"
	"net/http"

	"plantmaint/config"
	"plantmaint/models"
)

// GetWorkOrderLabor lists the labor entries logged against one work order.
func GetWorkOrderLabor(w http.ResponseWriter, r *http.Request) {
	woID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var entries []models.WorkOrderLabor
	if err := config.DB.Preload("User").Where("work_order_id = ?", woID).
		Order("labor_date").Find(&entries).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func CreateWorkOrderLabor(w http.ResponseWriter, r *http.Request) {
	woID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var entry models.WorkOrderLabor
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if entry.HoursWorked < 0 {
		http.Error(w, "hours_worked must not be negative", http.StatusBadRequest)
		return
	}
	if entry.LaborDate.Time().IsZero() {
		http.Error(w, "labor_date is required", http.StatusBadRequest)
		return
	}

	var wo models.WorkOrder
	if err := config.DB.Select("id").First(&wo, "id = ?", woID).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "work order not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var u models.User
	if err := config.DB.Select("id").First(&u, "id = ?", entry.UserID).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "user not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	entry.WorkOrderID = woID
	if err := config.DB.Create(&entry).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func UpdateWorkOrderLabor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var entry models.WorkOrderLabor
	if err := config.DB.First(&entry, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "labor entry not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	// Pointer fields so hours_worked can be corrected down to 0.
	var in struct {
		HoursWorked *float64         `json:"hours_worked"`
		LaborDate   *models.JSONTime `json:"labor_date"`
		Notes       *string          `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{}
	if in.HoursWorked != nil {
		if *in.HoursWorked < 0 {
			http.Error(w, "hours_worked must not be negative", http.StatusBadRequest)
			return
		}
		updates["hours_worked"] = *in.HoursWorked
	}
	if in.LaborDate != nil {
		updates["labor_date"] = *in.LaborDate
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&entry).Updates(updates).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, http.StatusOK, entry)
}

func DeleteWorkOrderLabor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.WorkOrderLabor{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "labor entry not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
