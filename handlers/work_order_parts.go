// handlers/work_order_parts.go
//
// Part consumption is the only path that mutates inventory quantities. Every
// mutation runs in one transaction with the inventory row locked (SELECT FOR
// UPDATE), so the stock check and the decrement are atomic and concurrent
// consumers can never drive quantity below zero.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plantmaint/config"
	"plantmaint/models"
)

var (
	errWorkOrderNotFound = errors.New("work order not found")
	errInventoryNotFound = errors.New("inventory item not found")
	errPartNotFound      = errors.New("work order part not found")
	errInsufficientStock = errors.New("insufficient stock")
)

func writePartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errWorkOrderNotFound),
		errors.Is(err, errInventoryNotFound),
		errors.Is(err, errPartNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
	}
}

// GetWorkOrderParts lists the parts consumed by one work order.
func GetWorkOrderParts(w http.ResponseWriter, r *http.Request) {
	woID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var parts []models.WorkOrderPart
	if err := config.DB.Preload("Inventory").Where("work_order_id = ?", woID).
		Order("created_at").Find(&parts).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

type partReq struct {
	InventoryID  uuid.UUID `json:"inventory_id"`
	QuantityUsed int       `json:"quantity_used"`
}

// CreateWorkOrderPart records a consumption and decrements stock atomically.
func CreateWorkOrderPart(w http.ResponseWriter, r *http.Request) {
	woID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req partReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.InventoryID == uuid.Nil {
		http.Error(w, "inventory_id is required", http.StatusBadRequest)
		return
	}
	if req.QuantityUsed <= 0 {
		http.Error(w, "quantity_used must be positive", http.StatusBadRequest)
		return
	}

	var part models.WorkOrderPart
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var wo models.WorkOrder
		if err := tx.Select("id").First(&wo, "id = ?", woID).Error; err != nil {
			if isNotFound(err) {
				return errWorkOrderNotFound
			}
			return err
		}

		var item models.Inventory
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", req.InventoryID).Error; err != nil {
			if isNotFound(err) {
				return errInventoryNotFound
			}
			return err
		}
		if item.Quantity < req.QuantityUsed {
			return errInsufficientStock
		}

		part = models.WorkOrderPart{
			WorkOrderID:  woID,
			InventoryID:  req.InventoryID,
			QuantityUsed: req.QuantityUsed,
		}
		if err := tx.Create(&part).Error; err != nil {
			return err
		}
		return tx.Model(&item).
			Update("quantity", gorm.Expr("quantity - ?", req.QuantityUsed)).Error
	})
	if err != nil {
		writePartError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, part)
}

// UpdateWorkOrderPart changes the consumed quantity and applies the delta to
// stock. Raising usage by more than the remaining stock is rejected the same
// way a fresh consumption would be.
func UpdateWorkOrderPart(w http.ResponseWriter, r *http.Request) {
	partID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req struct {
		QuantityUsed int `json:"quantity_used"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.QuantityUsed <= 0 {
		http.Error(w, "quantity_used must be positive", http.StatusBadRequest)
		return
	}

	var part models.WorkOrderPart
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the part row too: a concurrent update or delete of the same
		// part must not compute its delta from a stale quantity_used.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&part, "id = ?", partID).Error; err != nil {
			if isNotFound(err) {
				return errPartNotFound
			}
			return err
		}

		var item models.Inventory
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", part.InventoryID).Error; err != nil {
			if isNotFound(err) {
				return errInventoryNotFound
			}
			return err
		}

		delta := req.QuantityUsed - part.QuantityUsed
		if delta > 0 && item.Quantity < delta {
			return errInsufficientStock
		}

		if err := tx.Model(&part).Update("quantity_used", req.QuantityUsed).Error; err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		return tx.Model(&item).
			Update("quantity", gorm.Expr("quantity - ?", delta)).Error
	})
	if err != nil {
		writePartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

// DeleteWorkOrderPart removes a consumption record and restores the stock it
// took. The inventory row is fetched unscoped: a soft-deleted item still gets
// its quantity back so the ledger stays balanced if it is ever restored.
func DeleteWorkOrderPart(w http.ResponseWriter, r *http.Request) {
	partID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var part models.WorkOrderPart
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&part, "id = ?", partID).Error; err != nil {
			if isNotFound(err) {
				return errPartNotFound
			}
			return err
		}

		var item models.Inventory
		if err := tx.Unscoped().Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", part.InventoryID).Error; err != nil {
			if isNotFound(err) {
				return errInventoryNotFound
			}
			return err
		}

		// A concurrent delete can win the race after our read; restoring
		// stock for a row we did not actually delete would double it.
		res := tx.Delete(&part)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errPartNotFound
		}
		return tx.Unscoped().Model(&item).
			Update("quantity", gorm.Expr("quantity + ?", part.QuantityUsed)).Error
	})
	if err != nil {
		writePartError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
