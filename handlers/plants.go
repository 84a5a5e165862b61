package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"plantmaint/config"
	"plantmaint/models"
	"plantmaint/utils"
)

func GetAllPlants(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "location")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.Plant{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var plants []models.Plant
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("created_at DESC").Find(&plants).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, plants)
}

func CreatePlant(w http.ResponseWriter, r *http.Request) {
	var plant models.Plant
	if err := json.NewDecoder(r.Body).Decode(&plant); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if plant.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if len(plant.Geofence) > 0 {
		if _, err := utils.ParseGeofence(plant.Geofence); err != nil {
			http.Error(w, "invalid geofence: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := config.DB.Create(&plant).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, plant)
}

func GetPlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var plant models.Plant
	if err := config.DB.Preload("Machines").First(&plant, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "plant not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func UpdatePlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var plant models.Plant
	if err := config.DB.First(&plant, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "plant not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var in models.Plant
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(in.Geofence) > 0 {
		if _, err := utils.ParseGeofence(in.Geofence); err != nil {
			http.Error(w, "invalid geofence: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	in.ID = plant.ID
	if err := config.DB.Model(&plant).Updates(in).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func DeletePlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.Plant{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "plant not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PlantContains reports whether a lat/lng point falls inside the plant's
// geofence. Used by the mobile client to warn technicians clocking labor
// from off-site.
func PlantContains(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		http.Error(w, "lat and lng query parameters are required", http.StatusBadRequest)
		return
	}

	var plant models.Plant
	if err := config.DB.First(&plant, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "plant not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if len(plant.Geofence) == 0 {
		http.Error(w, "plant has no geofence", http.StatusUnprocessableEntity)
		return
	}
	poly, err := utils.ParseGeofence(plant.Geofence)
	if err != nil {
		http.Error(w, "stored geofence is invalid", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"plant_id": plant.ID,
		"lat":      lat,
		"lng":      lng,
		"contains": utils.Contains(poly, lat, lng),
	})
}
