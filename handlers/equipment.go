package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

// Engines

func GetAllEngines(w http.ResponseWriter, r *http.Request) {
	var engines []models.Engine
	query := config.DB.Preload("Customer").Order("model ASC")
	if v := r.URL.Query().Get("serialNo"); v != "" {
		query = query.Where("serial_no = ?", v)
	}
	if v := r.URL.Query().Get("customerId"); v != "" {
		query = query.Where("customer_id = ?", v)
	}
	if err := query.Find(&engines).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list engines: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": engines})
}

func CreateEngine(w http.ResponseWriter, r *http.Request) {
	var item models.Engine
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if item.Model == "" || item.SerialNo == "" {
		respondError(w, http.StatusBadRequest, "model and serialNo are required")
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create engine: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetEngine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Engine
	if err := config.DB.Preload("Customer").First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "engine not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdateEngine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Engine
	if err := config.DB.First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "engine not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update engine: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteEngine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result := config.DB.Where("id = ?", vars["id"]).Delete(&models.Engine{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete engine")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "engine not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pumps

func GetAllPumps(w http.ResponseWriter, r *http.Request) {
	var pumps []models.Pump
	query := config.DB.Preload("Customer").Order("model ASC")
	if v := r.URL.Query().Get("serialNo"); v != "" {
		query = query.Where("serial_no = ?", v)
	}
	if v := r.URL.Query().Get("customerId"); v != "" {
		query = query.Where("customer_id = ?", v)
	}
	if err := query.Find(&pumps).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list pumps: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": pumps})
}

func CreatePump(w http.ResponseWriter, r *http.Request) {
	var item models.Pump
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if item.Model == "" || item.SerialNo == "" {
		respondError(w, http.StatusBadRequest, "model and serialNo are required")
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create pump: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetPump(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Pump
	if err := config.DB.Preload("Customer").First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "pump not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdatePump(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Pump
	if err := config.DB.First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "pump not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update pump: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeletePump(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result := config.DB.Where("id = ?", vars["id"]).Delete(&models.Pump{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete pump")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "pump not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
