package service

import (
	"time"

	"go.uber.org/zap"

	"iron-pulse/backend/internal/model"
	"iron-pulse/backend/internal/repository"
)

// ── 测试辅助 ──

// fixedClock 固定"今天"，保证派生状态断言可复现
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testDatePtr(y int, m time.Month, d int) *time.Time {
	t := testDate(y, m, d)
	return &t
}

func versioned() model.VersionedModel {
	now := testDate(2024, 1, 1)
	return model.VersionedModel{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Version:   1,
	}
}

func emptyLocker(id, zone string, number int) model.Locker {
	return model.Locker{
		LockerID:       id,
		Zone:           zone,
		Number:         number,
		VersionedModel: versioned(),
	}
}

func occupiedLocker(id, zone string, number int, occ model.LockerOccupancy) model.Locker {
	l := emptyLocker(id, zone, number)
	l.IsOccupied = true
	l.Occupancy = &occ
	return l
}

func member(id, name string, lockerID string) model.Member {
	m := model.Member{
		MemberID:  id,
		Name:      name,
		Phone:     "010-0000-0000",
		Gender:    "female",
		JoinedAt:  testDate(2023, 6, 1),
		BaseModel: versioned().BaseModel,
	}
	if lockerID != "" {
		m.LockerID = &lockerID
	}
	return m
}

// testSeed 基础测试数据：
//   - L001 (A-1) 空柜、L002 (A-2) 空柜、L021 (B-1) 空柜
//   - L006 (A-6) 占用，截止 2024-08-09，会员 M00006
//   - L010 (A-10) 占用，无截止日，会员 M00004
//   - 会员 M00002 / M00003 未持有柜位
func testSeed() *repository.SeedData {
	return &repository.SeedData{
		Lockers: []model.Locker{
			emptyLocker("L001", "A", 1),
			emptyLocker("L002", "A", 2),
			occupiedLocker("L006", "A", 6, model.LockerOccupancy{
				AssignmentID:  "asg-l006",
				MemberID:      "M00006",
				MemberName:    "한서연",
				ProductID:     "LP003",
				ProductName:   "락커 6개월",
				StartDate:     testDate(2024, 2, 10),
				EndDate:       testDatePtr(2024, 8, 9),
				Fee:           150000,
				ProductPrice:  150000,
				ActualPrice:   150000,
				PaymentDate:   testDate(2024, 2, 10),
				PaymentTime:   "10:30",
				PaymentMethod: model.PaymentMethodCard,
			}),
			occupiedLocker("L010", "A", 10, model.LockerOccupancy{
				AssignmentID:  "asg-l010",
				MemberID:      "M00004",
				MemberName:    "정수진",
				ProductID:     "LP004",
				ProductName:   "락커 12개월",
				StartDate:     testDate(2024, 1, 15),
				Fee:           280000,
				ProductPrice:  280000,
				ActualPrice:   280000,
				PaymentDate:   testDate(2024, 1, 15),
				PaymentTime:   "09:00",
				PaymentMethod: model.PaymentMethodTransfer,
			}),
			emptyLocker("L021", "B", 1),
		},
		Members: []model.Member{
			member("M00002", "이영희", ""),
			member("M00003", "박민수", ""),
			member("M00004", "정수진", "L010"),
			member("M00006", "한서연", "L006"),
		},
		Products: []model.LockerProduct{
			{ProductID: "LP002", Name: "락커 3개월", DurationMonths: 3, Price: 80000},
			{ProductID: "LP003", Name: "락커 6개월", DurationMonths: 6, Price: 150000},
			{ProductID: "LP004", Name: "락커 12개월", DurationMonths: 12, Price: 280000},
		},
	}
}

func setupTestLockerService(today time.Time) (LockerService, *repository.Repository) {
	repo := repository.NewRepository(testSeed())
	svc := NewLockerService(repo, fixedClock{t: today}, zap.NewNop())
	return svc, repo
}
