package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

func GetAllCompanies(w http.ResponseWriter, r *http.Request) {
	var companies []models.Company
	query := config.DB.Order("name ASC")
	if v := r.URL.Query().Get("name"); v != "" {
		query = query.Where("name ILIKE ?", "%"+v+"%")
	}
	if err := query.Find(&companies).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list companies: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": companies})
}

func CreateCompany(w http.ResponseWriter, r *http.Request) {
	var item models.Company
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if item.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create company: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetCompany(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Company
	if err := config.DB.First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdateCompany(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Company
	if err := config.DB.First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update company: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteCompany(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result := config.DB.Where("id = ?", vars["id"]).Delete(&models.Company{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete company")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
