package handlers

import (
	"encoding/json"
	"net/http"

	"plantmaint/config"
	"plantmaint/models"
)

func GetAllVendors(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r)
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.Vendor{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var vendors []models.Vendor
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("created_at DESC").Find(&vendors).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, vendors)
}

func CreateVendor(w http.ResponseWriter, r *http.Request) {
	var vendor models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if vendor.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, vendor)
}

func GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var vendor models.Vendor
	if err := config.DB.First(&vendor, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "vendor not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}

func UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var vendor models.Vendor
	if err := config.DB.First(&vendor, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "vendor not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var in models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	in.ID = vendor.ID
	if err := config.DB.Model(&vendor).Updates(in).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}

func DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.Vendor{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "vendor not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
