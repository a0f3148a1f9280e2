package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is one buy/sell operation owned by a UserProfile.
type Investment struct {
	Id        int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserId    int64           `gorm:"column:user_id;not null;index" json:"user_id"`
	UserCpf   string          `gorm:"column:user_cpf;type:varchar(11);not null" json:"user_cpf"`
	Type      string          `gorm:"column:tipo;type:varchar(50);not null" json:"tipo"`
	Code      string          `gorm:"column:codigo;type:varchar(20);not null" json:"codigo"`
	Amount    decimal.Decimal `gorm:"column:valor;type:numeric(12,2);not null" json:"valor"`
	Operation string          `gorm:"column:operacao;type:varchar(20);not null" json:"operacao"`
	CreatedAt time.Time       `gorm:"column:criado_em;autoCreateTime:false;default:CURRENT_TIMESTAMP" json:"criado_em"`
	UpdatedAt time.Time       `gorm:"column:alterado_em;autoUpdateTime:false;default:CURRENT_TIMESTAMP" json:"alterado_em"`
}

func (Investment) TableName() string {
	return InvestmentsTable
}
