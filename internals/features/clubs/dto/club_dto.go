// internals/features/clubs/dto/club_dto.go
package dto

import (
	"strings"

	analyticsModel "courtbeat_backend/internals/features/analytics/model"
	model "courtbeat_backend/internals/features/clubs/model"
	scheduleModel "courtbeat_backend/internals/features/schedules/model"
)

/* ===================== REQUESTS ===================== */

type CreateClubRequest struct {
	Name             string                  `json:"name" validate:"required,min=1,max=200"`
	Email            string                  `json:"email" validate:"required,email"`
	Address          *string                 `json:"address" validate:"omitempty,max=500"`
	ContactPerson    *string                 `json:"contactPerson" validate:"omitempty,max=200"`
	ContactPhone     *string                 `json:"contactPhone" validate:"omitempty,max=50"`
	SubscriptionTier *model.SubscriptionTier `json:"subscriptionTier" validate:"omitempty,oneof=BASE PREMIUM"`
	HasReformer      *bool                   `json:"hasReformer"`
}

// Normalize: email club disimpan lowercase supaya cek duplikat konsisten
func (r *CreateClubRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// ToModel: builder untuk create, access code diisi service
func (r CreateClubRequest) ToModel() *model.ClubModel {
	m := &model.ClubModel{
		Name:             r.Name,
		Email:            r.Email,
		Address:          trimmedOrNil(r.Address),
		ContactPerson:    trimmedOrNil(r.ContactPerson),
		ContactPhone:     trimmedOrNil(r.ContactPhone),
		SubscriptionTier: model.TierBase,
		IsActive:         true, // default true sesuai DDL
	}
	if r.SubscriptionTier != nil {
		m.SubscriptionTier = *r.SubscriptionTier
	}
	if r.HasReformer != nil {
		m.HasReformer = *r.HasReformer
	}
	return m
}

// Update: semua optional (partial update)
type UpdateClubRequest struct {
	Name             *string                 `json:"name" validate:"omitempty,min=1,max=200"`
	Email            *string                 `json:"email" validate:"omitempty,email"`
	Address          *string                 `json:"address" validate:"omitempty,max=500"`
	ContactPerson    *string                 `json:"contactPerson" validate:"omitempty,max=200"`
	ContactPhone     *string                 `json:"contactPhone" validate:"omitempty,max=50"`
	SubscriptionTier *model.SubscriptionTier `json:"subscriptionTier" validate:"omitempty,oneof=BASE PREMIUM"`
	HasReformer      *bool                   `json:"hasReformer"`
	IsActive         *bool                   `json:"isActive"`
}

func (r *UpdateClubRequest) Normalize() {
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

// ApplyToModel: terapkan hanya field yang dikirim
func (r *UpdateClubRequest) ApplyToModel(m *model.ClubModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Address != nil {
		m.Address = trimmedOrNil(r.Address)
	}
	if r.ContactPerson != nil {
		m.ContactPerson = trimmedOrNil(r.ContactPerson)
	}
	if r.ContactPhone != nil {
		m.ContactPhone = trimmedOrNil(r.ContactPhone)
	}
	if r.SubscriptionTier != nil {
		m.SubscriptionTier = *r.SubscriptionTier
	}
	if r.HasReformer != nil {
		m.HasReformer = *r.HasReformer
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

// ClubDetailResponse: club + 10 jadwal terakhir + 100 event terakhir
type ClubDetailResponse struct {
	model.ClubModel
	Schedules []scheduleModel.ScheduleModel        `json:"schedules"`
	Analytics []analyticsModel.AnalyticsEventModel `json:"analytics"`
}

type ClubStats struct {
	TotalWorkouts     int64 `json:"totalWorkouts"`
	TotalSessions     int64 `json:"totalSessions"`
	ScheduledWorkouts int64 `json:"scheduledWorkouts"`
}

type ClubStatsResponse struct {
	Club  *ClubDetailResponse `json:"club"`
	Stats ClubStats           `json:"stats"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
