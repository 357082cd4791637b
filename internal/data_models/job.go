package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

type CreateJobRequest struct {
	UserID             uint   `json:"userId"`
	ClientID           uint   `json:"userIdClient"`
	EquipmentType      int    `json:"equipmentType"`
	EquipmentBrand     int    `json:"equipmentBrand"`
	EquipmentProcedure int    `json:"equipmentProcedure"`
	Notes              string `json:"notes"`
	Status             int    `json:"status"`
	Priority           int    `json:"priority"`
}

// EditJobRequest carries a partial update: nil fields are left untouched.
type EditJobRequest struct {
	ID                 uint    `json:"id"`
	UserID             *uint   `json:"userId"`
	ClientID           *uint   `json:"userIdClient"`
	EquipmentType      *int    `json:"equipmentType"`
	EquipmentBrand     *int    `json:"equipmentBrand"`
	EquipmentProcedure *int    `json:"equipmentProcedure"`
	Notes              *string `json:"notes"`
	Status             *int    `json:"status"`
	Priority           *int    `json:"priority"`
}

type ListJobsRequest struct {
	Type StatusFilter `json:"type"`
}

// StatusFilter selects either the active listing (the "ALL" sentinel) or one
// exact status code. Clients send the code as a JSON string or number; both
// are accepted and normalized to an integer here, at the boundary.
type StatusFilter struct {
	All  bool
	Code int
}

func (f *StatusFilter) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if strings.EqualFold(s, "ALL") {
			f.All = true
			return nil
		}
		code, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		f.Code = code
		return nil
	}

	var code int
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	f.Code = code
	return nil
}

// JobRow is one row of the listing response. Field names follow the wire
// contract consumed by the front end.
type JobRow struct {
	JobID                         uint   `json:"JOB_ID"`
	ClientName                    string `json:"CLIENT_NAME"`
	UserName                      string `json:"USER_NAME"`
	EquipmentTypeDescription      string `json:"EQUIPMENT_TYPE_DESCRIPTION"`
	EquipmentBrandDescription     string `json:"EQUIPMENT_BRAND_DESCRIPTION"`
	EquipmentProcedureDescription string `json:"EQUIPMENT_PROCEDURE_DESCRIPTION"`
	Notes                         string `json:"NOTES"`
	StatusProgressCode            string `json:"STATUS_PROGRESS_CODE"`
	StatusProgressDescription     string `json:"STATUS_PROGRESS_DESCRIPTION"`
	PriorityDescription           string `json:"PRIORITY_DESCRIPTION"`
}
