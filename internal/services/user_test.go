package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pzaitsev/user-records/internal/models"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success with defaults", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().
			EmailTaken(gomock.Any(), "doe@x.com", gomock.Nil()).
			Return(false, nil)
		writer.EXPECT().
			Save(gomock.Any(), "", "Doe", "", "doe@x.com", "ACTIVE").
			Return(&models.UserDB{
				ID:        1,
				LastName:  "Doe",
				Email:     "doe@x.com",
				Status:    "ACTIVE",
				Addresses: []models.UserAddressDB{},
			}, nil)

		user, err := svc.Create(ctx, UserInput{LastName: "Doe", Email: "doe@x.com"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "", user.FirstName)
		assert.Equal(t, "ACTIVE", user.Status)
	})

	t.Run("duplicate email", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().
			EmailTaken(gomock.Any(), "taken@x.com", gomock.Nil()).
			Return(true, nil)

		user, err := svc.Create(ctx, UserInput{LastName: "Doe", Email: "taken@x.com"})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"A user with this email already exists."}, vErr.Fields["email"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		user, err := svc.Create(ctx, UserInput{FirstName: "John"})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"This field is required."}, vErr.Fields["last_name"])
		assert.Equal(t, []string{"This field is required."}, vErr.Fields["email"])
	})

	t.Run("invalid email format", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		user, err := svc.Create(ctx, UserInput{LastName: "Doe", Email: "invalid-email"})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"Enter a valid email address."}, vErr.Fields["email"])
	})

	t.Run("invalid status", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().
			EmailTaken(gomock.Any(), "doe@x.com", gomock.Nil()).
			Return(false, nil)

		user, err := svc.Create(ctx, UserInput{LastName: "Doe", Email: "doe@x.com", Status: "INVALID_STATUS"})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{`"INVALID_STATUS" is not a valid choice.`}, vErr.Fields["status"])
	})

	t.Run("writer failure", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().
			EmailTaken(gomock.Any(), "doe@x.com", gomock.Nil()).
			Return(false, nil)
		writer.EXPECT().
			Save(gomock.Any(), "", "Doe", "", "doe@x.com", "ACTIVE").
			Return(nil, errors.New("database failure"))

		user, err := svc.Create(ctx, UserInput{LastName: "Doe", Email: "doe@x.com"})

		assert.Nil(t, user)
		assert.EqualError(t, err, "database failure")
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	existing := &models.UserDB{
		ID:        1,
		FirstName: "John",
		LastName:  "Doe",
		Initials:  "JD",
		Email:     "john.doe@example.com",
		Status:    "ACTIVE",
		Addresses: []models.UserAddressDB{{ID: 7, UserID: 1, AddressType: "HOME"}},
	}

	t.Run("not found", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(99999)).Return(nil, nil)

		user, err := svc.Update(ctx, 99999, UserInput{LastName: "Doe", Email: "doe@x.com"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate email excludes own id", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
		reader.EXPECT().
			EmailTaken(gomock.Any(), "other@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, excludeID *int64) (bool, error) {
				assert.NotNil(t, excludeID)
				assert.Equal(t, int64(1), *excludeID)
				return true, nil
			})

		user, err := svc.Update(ctx, 1, UserInput{LastName: "Doe", Email: "other@example.com"})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"A user with this email already exists."}, vErr.Fields["email"])
	})

	t.Run("success keeps addresses", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
		reader.EXPECT().
			EmailTaken(gomock.Any(), "john.updated@example.com", gomock.Any()).
			Return(false, nil)
		writer.EXPECT().
			Update(gomock.Any(), int64(1), "Johnny", "Updated", "JU", "john.updated@example.com", "INACTIVE").
			Return(&models.UserDB{
				ID:        1,
				FirstName: "Johnny",
				LastName:  "Updated",
				Initials:  "JU",
				Email:     "john.updated@example.com",
				Status:    "INACTIVE",
				CreatedAt: existing.CreatedAt,
				UpdatedAt: time.Now(),
			}, nil)

		user, err := svc.Update(ctx, 1, UserInput{
			FirstName: "Johnny",
			LastName:  "Updated",
			Initials:  "JU",
			Email:     "john.updated@example.com",
			Status:    "INACTIVE",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "INACTIVE", user.Status)
		assert.Len(t, user.Addresses, 1)
	})
}

func TestUserService_Patch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	existing := &models.UserDB{
		ID:        1,
		FirstName: "John",
		LastName:  "Doe",
		Initials:  "JD",
		Email:     "john.doe@example.com",
		Status:    "ACTIVE",
		Addresses: []models.UserAddressDB{},
	}

	t.Run("only first_name changes", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
		reader.EXPECT().
			EmailTaken(gomock.Any(), "john.doe@example.com", gomock.Any()).
			Return(false, nil)
		writer.EXPECT().
			Update(gomock.Any(), int64(1), "Updated John", "Doe", "JD", "john.doe@example.com", "ACTIVE").
			Return(&models.UserDB{
				ID:        1,
				FirstName: "Updated John",
				LastName:  "Doe",
				Initials:  "JD",
				Email:     "john.doe@example.com",
				Status:    "ACTIVE",
			}, nil)

		firstName := "Updated John"
		user, err := svc.Patch(ctx, 1, UserPatch{FirstName: &firstName})

		assert.NoError(t, err)
		assert.Equal(t, "Updated John", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.Equal(t, "john.doe@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(99999)).Return(nil, nil)

		firstName := "Ghost"
		user, err := svc.Patch(ctx, 99999, UserPatch{FirstName: &firstName})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("explicit empty status falls back to ACTIVE", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		inactive := *existing
		inactive.Status = "INACTIVE"
		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&inactive, nil)
		reader.EXPECT().
			EmailTaken(gomock.Any(), "john.doe@example.com", gomock.Any()).
			Return(false, nil)
		writer.EXPECT().
			Update(gomock.Any(), int64(1), "John", "Doe", "JD", "john.doe@example.com", "ACTIVE").
			Return(&models.UserDB{
				ID:        1,
				FirstName: "John",
				LastName:  "Doe",
				Initials:  "JD",
				Email:     "john.doe@example.com",
				Status:    "ACTIVE",
			}, nil)

		status := ""
		user, err := svc.Patch(ctx, 1, UserPatch{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, "ACTIVE", user.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
		reader.EXPECT().
			EmailTaken(gomock.Any(), "john.doe@example.com", gomock.Any()).
			Return(false, nil)

		status := "RETIRED"
		user, err := svc.Patch(ctx, 1, UserPatch{Status: &status})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{`"RETIRED" is not a valid choice.`}, vErr.Fields["status"])
	})

	t.Run("patched email must stay valid", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)

		email := ""
		user, err := svc.Patch(ctx, 1, UserPatch{Email: &email})

		assert.Nil(t, user)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"This field is required."}, vErr.Fields["email"])
	})
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		svc := NewUserService(reader, NewMockUserWriter(ctrl))

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, LastName: "Doe", Email: "doe@x.com"}, nil)

		user, err := svc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "doe@x.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		svc := NewUserService(reader, NewMockUserWriter(ctrl))

		reader.EXPECT().GetByID(gomock.Any(), int64(99999)).Return(nil, nil)

		user, err := svc.Get(ctx, 99999)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(NewMockUserReader(ctrl), writer)

		writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)

		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("not found", func(t *testing.T) {
		writer := NewMockUserWriter(ctrl)
		svc := NewUserService(NewMockUserReader(ctrl), writer)

		writer.EXPECT().Delete(gomock.Any(), int64(99999)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 99999), ErrUserNotFound)
	})
}
