package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentStorage struct {
	uploads int
	deleted []string
}

func (f *fakeDocumentStorage) UploadDocument(ctx context.Context, file io.Reader, folder, fileName string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://files.example.com/%s/%s-%d", folder, fileName, f.uploads), nil
}

func (f *fakeDocumentStorage) DeleteDocument(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func TestProfileUpdate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice", model.RoleStudent, "password1")
	svc := NewProfileService(repository.NewUserRepository(db), nil)

	first := "  Alice "
	email := "alice.new@example.com"
	updated, err := svc.Update(context.Background(), identityOf(user), dto.UpdateProfileInput{
		FirstName: &first,
		Email:     &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "alice.new@example.com", updated.Email)
}

func TestProfileUpdateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice", model.RoleStudent, "password1")
	seedUser(t, db, "bob", model.RoleTPO, "password1")
	svc := NewProfileService(repository.NewUserRepository(db), nil)

	email := "bob@example.com"
	_, err := svc.Update(context.Background(), identityOf(user), dto.UpdateProfileInput{Email: &email})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestProfileUpdateCompanyFieldsRequireEmployer(t *testing.T) {
	db := setupTestDB(t)
	student := seedUser(t, db, "alice", model.RoleStudent, "password1")
	svc := NewProfileService(repository.NewUserRepository(db), nil)

	company := "Acme Corp"
	_, err := svc.Update(context.Background(), identityOf(student), dto.UpdateProfileInput{CompanyName: &company})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestProfileUpdateInstituteFieldsRequireTPO(t *testing.T) {
	db := setupTestDB(t)
	employer := seedUser(t, db, "acme", model.RoleEmployer, "password1")
	svc := NewProfileService(repository.NewUserRepository(db), nil)

	institute := "Engineering College"
	_, err := svc.Update(context.Background(), identityOf(employer), dto.UpdateProfileInput{Institute: &institute})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestUploadResume(t *testing.T) {
	db := setupTestDB(t)
	student := seedUser(t, db, "alice", model.RoleStudent, "password1")
	docs := &fakeDocumentStorage{}
	svc := NewProfileService(repository.NewUserRepository(db), docs)
	ctx := context.Background()

	updated, err := svc.UploadResume(ctx, identityOf(student), &dto.ResumeFile{
		Reader:   strings.NewReader("pdf bytes"),
		FileName: "resume.pdf",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ResumeURL)
	firstURL := *updated.ResumeURL

	// A second upload replaces the stored URL and deletes the old document.
	updated, err = svc.UploadResume(ctx, identityOf(student), &dto.ResumeFile{
		Reader:   strings.NewReader("pdf bytes v2"),
		FileName: "resume.pdf",
	})
	require.NoError(t, err)
	assert.NotEqual(t, firstURL, *updated.ResumeURL)
	assert.Equal(t, []string{firstURL}, docs.deleted)
}

func TestUploadResumeRequiresStudent(t *testing.T) {
	db := setupTestDB(t)
	employer := seedUser(t, db, "acme", model.RoleEmployer, "password1")
	svc := NewProfileService(repository.NewUserRepository(db), &fakeDocumentStorage{})

	_, err := svc.UploadResume(context.Background(), identityOf(employer), &dto.ResumeFile{
		Reader:   strings.NewReader("pdf bytes"),
		FileName: "resume.pdf",
	})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestUploadResumeWithoutStorage(t *testing.T) {
	db := setupTestDB(t)
	student := seedUser(t, db, "alice", model.RoleStudent, "password1")
	svc := NewProfileService(repository.NewUserRepository(db), nil)

	_, err := svc.UploadResume(context.Background(), identityOf(student), &dto.ResumeFile{
		Reader:   strings.NewReader("pdf bytes"),
		FileName: "resume.pdf",
	})
	assert.True(t, errors.Is(err, apperror.ErrInternal))
}
