package repository

import (
	"github.com/piddash/pidgen/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB           *gorm.DB
	User         *UserRepository
	JWT          *JWTRepository
	Project      *ProjectRepository
	CoreProject  *CoreProjectRepository
	Customer     *CustomerRepository
	BusinessUnit *BusinessUnitRepository
	BillingType  *BillingTypeRepository
	Segment      *SegmentRepository
	Role         *RoleRepository
	ProjectLog   *ProjectLogRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *Repository {
	br := newBaseRepository(db, logger, jwtService)
	_userRepo := &UserRepository{baseRepository: br}
	_projectLogRepo := &ProjectLogRepository{baseRepository: br}

	return &Repository{
		DB:           db,
		User:         _userRepo,
		JWT:          &JWTRepository{baseRepository: br, user: _userRepo},
		Project:      &ProjectRepository{baseRepository: br, log: _projectLogRepo},
		CoreProject:  &CoreProjectRepository{baseRepository: br},
		Customer:     &CustomerRepository{baseRepository: br},
		BusinessUnit: &BusinessUnitRepository{baseRepository: br},
		BillingType:  &BillingTypeRepository{baseRepository: br},
		Segment:      &SegmentRepository{baseRepository: br},
		Role:         &RoleRepository{baseRepository: br},
		ProjectLog:   _projectLogRepo,
	}
}

// Note: GORM write operations already run inside a transaction; this helper
// matters only where several reads and writes must see one consistent state.
// Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
