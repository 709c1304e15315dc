package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
)

// ClassRoomService room CRUD.
type ClassRoomService interface {
	Create(ctx context.Context, req *dto.ClassRoomRequest) (*model.ClassRoom, error)
	GetByID(ctx context.Context, id uint) (*model.ClassRoom, error)
	List(ctx context.Context) ([]model.ClassRoom, error)
	Update(ctx context.Context, id uint, req *dto.ClassRoomRequest) (*model.ClassRoom, error)
	Delete(ctx context.Context, id uint) error
}

type classRoomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewClassRoomService(repo *repository.Repository, logger *zap.Logger) ClassRoomService {
	return &classRoomService{repo: repo, logger: logger}
}

func (s *classRoomService) Create(ctx context.Context, req *dto.ClassRoomRequest) (*model.ClassRoom, error) {
	room := &model.ClassRoom{IsActive: true}
	if err := s.apply(ctx, room, req); err != nil {
		return nil, err
	}
	if err := s.repo.ClassRoom.Create(ctx, room); err != nil {
		s.logger.Error("failed to create room", zap.String("room_number", req.RoomNumber), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *classRoomService) GetByID(ctx context.Context, id uint) (*model.ClassRoom, error) {
	room, err := s.repo.ClassRoom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrRoomNotFound, "Room", id)
		}
		s.logger.Error("failed to load room", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *classRoomService) List(ctx context.Context) ([]model.ClassRoom, error) {
	rooms, err := s.repo.ClassRoom.List(ctx)
	if err != nil {
		s.logger.Error("failed to list rooms", zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

func (s *classRoomService) Update(ctx context.Context, id uint, req *dto.ClassRoomRequest) (*model.ClassRoom, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, room, req); err != nil {
		return nil, err
	}
	if err := s.repo.ClassRoom.Update(ctx, room); err != nil {
		s.logger.Error("failed to update room", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *classRoomService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.ClassRoom.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check room", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrRoomNotFound, "Room", id)
	}
	if err := s.repo.ClassRoom.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete room", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *classRoomService) apply(ctx context.Context, room *model.ClassRoom, req *dto.ClassRoomRequest) error {
	roomType := model.RoomClassroom
	if req.RoomType != "" {
		roomType = model.RoomType(req.RoomType)
		if !roomType.Valid() {
			return ErrInvalidValue.Withf("Invalid room type: %s", req.RoomType)
		}
	}
	if req.DepartmentID != nil {
		if err := ensureDepartment(ctx, s.repo, *req.DepartmentID); err != nil {
			return err
		}
	}

	room.Name = req.Name
	room.RoomNumber = req.RoomNumber
	room.BuildingWing = req.BuildingWing
	room.Capacity = req.Capacity
	room.RoomType = roomType
	room.HasProjector = req.HasProjector
	room.HasAC = req.HasAC
	room.Equipment = req.Equipment
	room.IsActive = boolOr(req.IsActive, room.IsActive)
	room.DepartmentID = req.DepartmentID
	room.Department = nil
	return nil
}
