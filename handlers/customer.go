package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

func GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	query := config.DB.Preload("Company").Order("name ASC")
	if v := r.URL.Query().Get("name"); v != "" {
		query = query.Where("name ILIKE ?", "%"+v+"%")
	}
	if v := r.URL.Query().Get("companyId"); v != "" {
		query = query.Where("company_id = ?", v)
	}
	if err := query.Find(&customers).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list customers: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": customers})
}

func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var item models.Customer
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if item.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create customer: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Customer
	if err := config.DB.Preload("Company").First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item models.Customer
	if err := config.DB.First(&item, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update customer: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result := config.DB.Where("id = ?", vars["id"]).Delete(&models.Customer{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
