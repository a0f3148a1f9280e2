package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserProfile struct {
	Id        int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     *string        `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Cpf       string         `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:ix_user_profiles_cpf" json:"cpf"`
	Data      datatypes.JSON `gorm:"column:dados;type:jsonb" json:"dados,omitempty" swaggertype:"object"`
	CreatedAt time.Time      `gorm:"column:criado_em;autoCreateTime:false;default:CURRENT_TIMESTAMP" json:"criado_em"`
	UpdatedAt time.Time      `gorm:"column:alterado_em;autoUpdateTime:false;default:CURRENT_TIMESTAMP" json:"alterado_em"`

	// DisplayName lives only in memory and is never persisted.
	DisplayName string `gorm:"-" json:"nome,omitempty"`

	Investments []Investment `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return UserProfilesTable
}
