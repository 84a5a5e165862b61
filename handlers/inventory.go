package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"plantmaint/config"
	"plantmaint/models"
)

func GetAllInventory(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "plant_id", "vendor_id")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.Inventory{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var items []models.Inventory
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("created_at DESC").Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, items)
}

func CreateInventory(w http.ResponseWriter, r *http.Request) {
	var item models.Inventory
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if item.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}
	if item.UnitPrice < 0 {
		http.Error(w, "unit_price must not be negative", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var item models.Inventory
	if err := config.DB.Preload("Vendor").First(&item, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateInventory edits the catalog fields. Stock adjustments driven by part
// consumption go through the work-order part handlers instead so they stay
// inside the row-locked transaction.
func UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var item models.Inventory
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	// Pointer fields so zero is distinguishable from absent: setting
	// quantity or unit_price to 0 is a legitimate edit.
	var in struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		PlantID     *uuid.UUID `json:"plant_id"`
		VendorID    *uuid.UUID `json:"vendor_id"`
		Quantity    *int       `json:"quantity"`
		UnitPrice   *float64   `json:"unit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PlantID != nil {
		updates["plant_id"] = *in.PlantID
	}
	if in.VendorID != nil {
		updates["vendor_id"] = *in.VendorID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			http.Error(w, "quantity must not be negative", http.StatusBadRequest)
			return
		}
		updates["quantity"] = *in.Quantity
	}
	if in.UnitPrice != nil {
		if *in.UnitPrice < 0 {
			http.Error(w, "unit_price must not be negative", http.StatusBadRequest)
			return
		}
		updates["unit_price"] = *in.UnitPrice
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, http.StatusOK, item)
}

func DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.Inventory{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "inventory item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
