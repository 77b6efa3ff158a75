package services

import (
	"MediDesk/models"
	"MediDesk/utils"
	"context"
)

// In-memory repository fakes. They reproduce the contracts the real
// implementations provide: nil on missing rows, DuplicateSlot/SlotTaken on
// unique-index collisions, and status-independent slot occupation.

type fakeUserRepo struct {
	users map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID int64) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, _ := f.GetUserByUsername(ctx, username)
	return u != nil, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(ctx, email)
	return u != nil, nil
}

func (f *fakeUserRepo) UpdateUserPassword(_ context.Context, userID int64, hashedPassword string) error {
	if u, ok := f.users[userID]; ok {
		u.PasswordHash = hashedPassword
	}
	return nil
}

func (f *fakeUserRepo) DeleteUserCache(context.Context, int64) error { return nil }

type fakeDoctorRepo struct {
	doctors map[uint]*models.Doctor
}

func newFakeDoctorRepo(doctors ...*models.Doctor) *fakeDoctorRepo {
	f := &fakeDoctorRepo{doctors: make(map[uint]*models.Doctor)}
	for _, d := range doctors {
		f.doctors[d.ID] = d
	}
	return f
}

func (f *fakeDoctorRepo) CreateWithUser(_ context.Context, user *models.User, doctor *models.Doctor) error {
	user.ID = int64(len(f.doctors) + 100)
	doctor.ID = uint(len(f.doctors) + 1)
	doctor.UserID = user.ID
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uint) (*models.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) GetByUserID(_ context.Context, userID int64) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) Search(_ context.Context, _ string, _ uint) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Update(_ context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id uint) error {
	delete(f.doctors, id)
	return nil
}

func (f *fakeDoctorRepo) Count(context.Context) (int64, error) {
	return int64(len(f.doctors)), nil
}

type fakePatientRepo struct {
	patients map[uint]*models.Patient
}

func newFakePatientRepo(patients ...*models.Patient) *fakePatientRepo {
	f := &fakePatientRepo{patients: make(map[uint]*models.Patient)}
	for _, p := range patients {
		f.patients[p.ID] = p
	}
	return f
}

func (f *fakePatientRepo) CreateWithUser(_ context.Context, user *models.User, patient *models.Patient) error {
	user.ID = int64(len(f.patients) + 200)
	patient.ID = uint(len(f.patients) + 1)
	patient.UserID = user.ID
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) GetByID(_ context.Context, id uint) (*models.Patient, error) {
	return f.patients[id], nil
}

func (f *fakePatientRepo) GetByUserID(_ context.Context, userID int64) (*models.Patient, error) {
	for _, p := range f.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) Search(_ context.Context, _ string) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePatientRepo) Update(_ context.Context, patient *models.Patient) error {
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) Deactivate(_ context.Context, id uint) error {
	if _, ok := f.patients[id]; !ok {
		return utils.NewDomainError(utils.KindNotFound, "patient not found")
	}
	return nil
}

func (f *fakePatientRepo) Count(context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	treatments   map[uint]*models.Treatment
	nextID       uint
}

func newFakeAppointmentRepo(appointments ...*models.Appointment) *fakeAppointmentRepo {
	f := &fakeAppointmentRepo{
		appointments: make(map[uint]*models.Appointment),
		treatments:   make(map[uint]*models.Treatment),
		nextID:       1,
	}
	for _, a := range appointments {
		f.appointments[a.ID] = a
		if a.ID >= f.nextID {
			f.nextID = a.ID + 1
		}
	}
	return f
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.DoctorID == appointment.DoctorID &&
			existing.Date == appointment.Date &&
			existing.Time == appointment.Time {
			return utils.NewDomainError(utils.KindSlotTaken, "this time slot is already booked; please choose another time")
		}
	}
	appointment.ID = f.nextID
	f.nextID++
	f.appointments[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	appointment, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	if t, ok := f.treatments[id]; ok {
		copied.Treatment = t
	}
	return &copied, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	appointment, ok := f.appointments[id]
	if !ok {
		return utils.NewDomainError(utils.KindNotFound, "appointment not found")
	}
	appointment.Status = status
	return nil
}

func (f *fakeAppointmentRepo) Complete(_ context.Context, id uint, treatment *models.Treatment) error {
	appointment, ok := f.appointments[id]
	if !ok {
		return utils.NewDomainError(utils.KindNotFound, "appointment not found")
	}
	appointment.Status = models.StatusCompleted
	treatment.AppointmentID = id
	f.treatments[id] = treatment
	return nil
}

func (f *fakeAppointmentRepo) ListByPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpcomingByPatient(_ context.Context, patientID uint, from string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID && a.Status == models.StatusBooked && a.Date >= from {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CompletedByPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID && a.Status == models.StatusCompleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpcomingByDoctor(_ context.Context, doctorID uint, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.Status == models.StatusBooked && a.Date >= from && a.Date <= to {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CompletedByPatientAndDoctor(_ context.Context, patientID, doctorID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID && a.DoctorID == doctorID && a.Status == models.StatusCompleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetAll(context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Counts(_ context.Context, from string) (int64, int64, error) {
	var total, upcoming int64
	for _, a := range f.appointments {
		total++
		if a.Status == models.StatusBooked && a.Date >= from {
			upcoming++
		}
	}
	return total, upcoming, nil
}

type fakeAvailabilityRepo struct {
	windows []*models.DoctorAvailability
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, availability *models.DoctorAvailability) error {
	for _, w := range f.windows {
		if w.DoctorID == availability.DoctorID && w.Date == availability.Date && w.StartTime == availability.StartTime {
			return utils.NewDomainError(utils.KindDuplicateSlot, "availability already exists for this time slot")
		}
	}
	availability.ID = uint(len(f.windows) + 1)
	f.windows = append(f.windows, availability)
	return nil
}

func (f *fakeAvailabilityRepo) ListUpcoming(_ context.Context, doctorID uint, from, to string, onlyAvailable bool) ([]models.DoctorAvailability, error) {
	var out []models.DoctorAvailability
	for _, w := range f.windows {
		if w.DoctorID != doctorID || w.Date < from || w.Date > to {
			continue
		}
		if onlyAvailable && !w.IsAvailable {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	departments map[uint]*models.Department
	doctorCount map[uint]int
}

func newFakeDepartmentRepo(departments ...*models.Department) *fakeDepartmentRepo {
	f := &fakeDepartmentRepo{
		departments: make(map[uint]*models.Department),
		doctorCount: make(map[uint]int),
	}
	for _, d := range departments {
		f.departments[d.ID] = d
	}
	return f
}

func (f *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	for _, d := range f.departments {
		if d.Name == department.Name {
			return utils.NewDomainError(utils.KindValidation, "department already exists")
		}
	}
	department.ID = uint(len(f.departments) + 1)
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id uint) (*models.Department, error) {
	return f.departments[id], nil
}

func (f *fakeDepartmentRepo) GetAll(context.Context) ([]models.Department, error) {
	out := make([]models.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, department *models.Department) error {
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id uint) error {
	if f.doctorCount[id] > 0 {
		return utils.NewDomainError(utils.KindInUse, "department has doctors assigned and cannot be deleted")
	}
	delete(f.departments, id)
	return nil
}
