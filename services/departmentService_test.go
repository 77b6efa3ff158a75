package services

import (
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"testing"
)

func TestCreateDepartment(t *testing.T) {
	repo := newFakeDepartmentRepo()
	service := NewDepartmentService(repo)

	department, err := service.Create(context.Background(), DepartmentInput{Name: "  Cardiology ", Description: "Heart care"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if department.Name != "Cardiology" {
		t.Errorf("name = %q, want trimmed %q", department.Name, "Cardiology")
	}
}

func TestCreateDepartmentValidation(t *testing.T) {
	repo := newFakeDepartmentRepo(&models.Department{ID: 1, Name: "Cardiology"})
	service := NewDepartmentService(repo)
	ctx := context.Background()

	if _, err := service.Create(ctx, DepartmentInput{Name: "   "}); !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("Create() with blank name error = %v, want Validation", err)
	}
	if _, err := service.Create(ctx, DepartmentInput{Name: "Cardiology"}); !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("Create() with duplicate name error = %v, want Validation", err)
	}
}

func TestDeleteDepartmentInUse(t *testing.T) {
	repo := newFakeDepartmentRepo(&models.Department{ID: 1, Name: "Cardiology"})
	repo.doctorCount[1] = 2
	service := NewDepartmentService(repo)

	if err := service.Delete(context.Background(), 1); !utils.IsKind(err, utils.KindInUse) {
		t.Fatalf("Delete() of staffed department error = %v, want InUse", err)
	}
}

func TestDeleteMissingDepartment(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentRepo())

	if err := service.Delete(context.Background(), 42); !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("Delete() error = %v, want NotFound", err)
	}
}
