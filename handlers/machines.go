package handlers

import (
	"encoding/json"
	"net/http"

	"plantmaint/config"
	"plantmaint/models"
)

func GetAllMachines(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "plant_id", "status")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.Machine{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var machines []models.Machine
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("created_at DESC").Find(&machines).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, machines)
}

func CreateMachine(w http.ResponseWriter, r *http.Request) {
	var machine models.Machine
	if err := json.NewDecoder(r.Body).Decode(&machine); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if machine.Name == "" || machine.SerialNumber == "" {
		http.Error(w, "name and serial_number are required", http.StatusBadRequest)
		return
	}
	if machine.Status == "" {
		machine.Status = models.MachineStatusActive
	}
	if !models.ValidMachineStatus(machine.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&machine).Error; err != nil {
		if isDuplicateKey(err) {
			http.Error(w, "serial_number already registered", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, machine)
}

func GetMachine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var machine models.Machine
	if err := config.DB.Preload("Plant").First(&machine, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "machine not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, machine)
}

func UpdateMachine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var machine models.Machine
	if err := config.DB.First(&machine, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "machine not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var in models.Machine
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if in.Status != "" && !models.ValidMachineStatus(in.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	in.ID = machine.ID
	if err := config.DB.Model(&machine).Updates(in).Error; err != nil {
		if isDuplicateKey(err) {
			http.Error(w, "serial_number already registered", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, machine)
}

func DeleteMachine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.Machine{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "machine not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
