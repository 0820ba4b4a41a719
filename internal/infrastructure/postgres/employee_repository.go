package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	store *Store
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(store *Store) *EmployeeRepo {
	return &EmployeeRepo{store: store}
}

// Create persiste un nuevo empleado y asigna el id generado. Un company_id
// inexistente viola la foreign key y sube como error de store (la app no
// re-valida integridad referencial).
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (company_id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	id, err := r.store.Insert(context.Background(), query,
		employee.CompanyID, employee.Name, employee.Email,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	employee.ID = id
	return nil
}

// GetByID obtiene un empleado por id. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `
		SELECT id, company_id, name, email, created_at, updated_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.store.Get(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Email, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List devuelve empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT id, company_id, name, email, created_at, updated_at
		FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryEmployees(query, limit, offset)
}

// ListByCompany devuelve los empleados de una empresa con paginación.
func (r *EmployeeRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT id, company_id, name, email, created_at, updated_at
		FROM employees WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryEmployees(query, companyID, limit, offset)
}

func (r *EmployeeRepo) queryEmployees(query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.store.All(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Email, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
