package entity

// TestValue is a minimal record used to exercise the CRUD pipeline end to end.
type TestValue struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:255;not null"`
}

func (TestValue) TableName() string { return "test_values" }
