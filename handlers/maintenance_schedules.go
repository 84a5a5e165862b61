package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"plantmaint/config"
	"plantmaint/models"
)

var (
	errScheduleNotFound    = errors.New("maintenance schedule not found")
	errScheduleMachineGone = errors.New("machine for schedule not found")
)

func GetAllMaintenanceSchedules(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "machine_id")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.MaintenanceSchedule{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var schedules []models.MaintenanceSchedule
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("next_due").Find(&schedules).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeList(w, total, params, schedules)
}

func CreateMaintenanceSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule models.MaintenanceSchedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if schedule.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if schedule.FrequencyDays <= 0 {
		http.Error(w, "frequency_days must be positive", http.StatusBadRequest)
		return
	}
	if schedule.NextDue.Time().IsZero() {
		http.Error(w, "next_due is required", http.StatusBadRequest)
		return
	}
	var machine models.Machine
	if err := config.DB.Select("id").First(&machine, "id = ?", schedule.MachineID).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "machine not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if err := config.DB.Create(&schedule).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func GetMaintenanceSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var schedule models.MaintenanceSchedule
	if err := config.DB.Preload("Machine").First(&schedule, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "maintenance schedule not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func UpdateMaintenanceSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var schedule models.MaintenanceSchedule
	if err := config.DB.First(&schedule, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			http.Error(w, "maintenance schedule not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var in models.MaintenanceSchedule
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if in.FrequencyDays < 0 {
		http.Error(w, "frequency_days must be positive", http.StatusBadRequest)
		return
	}
	in.ID = schedule.ID
	in.MachineID = schedule.MachineID
	if err := config.DB.Model(&schedule).Updates(in).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func DeleteMaintenanceSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := config.DB.Delete(&models.MaintenanceSchedule{}, "id = ?", id)
	if res.Error != nil {
		http.Error(w, "db error: "+res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "maintenance schedule not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteMaintenanceSchedule records a completion: last_completed is set to
// the given date, next_due rolls forward by frequency_days, and the machine's
// maintenance dates are kept in step. One transaction so the schedule and the
// machine can never disagree.
func CompleteMaintenanceSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req struct {
		CompletionDate string `json:"completion_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.CompletionDate == "" {
		http.Error(w, "completion_date is required", http.StatusBadRequest)
		return
	}
	completed, err := models.ParseDate(req.CompletionDate)
	if err != nil {
		http.Error(w, "invalid completion_date", http.StatusBadRequest)
		return
	}

	var schedule models.MaintenanceSchedule
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&schedule, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return errScheduleNotFound
			}
			return err
		}

		var machine models.Machine
		if err := tx.Select("id").First(&machine, "id = ?", schedule.MachineID).Error; err != nil {
			if isNotFound(err) {
				return errScheduleMachineGone
			}
			return err
		}

		nextDue := schedule.NextDueFrom(completed)
		if err := tx.Model(&schedule).Updates(map[string]interface{}{
			"last_completed": models.JSONTime(completed),
			"next_due":       models.JSONTime(nextDue),
		}).Error; err != nil {
			return err
		}

		return tx.Model(&machine).Updates(map[string]interface{}{
			"last_maintenance_date": models.JSONTime(completed),
			"next_maintenance_date": models.JSONTime(nextDue),
		}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errScheduleNotFound), errors.Is(err, errScheduleMachineGone):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}
