package department

type Department struct {
	ID            uint    `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:department_name;not null"`
	Description   *string `gorm:"column:description"`
	EmployeeCount int64   `gorm:"column:employee_count;default:0"`
}

func (Department) TableName() string {
	return "departments"
}
