package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// fakeDB is an in-memory stand-in for the database shared by the fake repositories
type fakeDB struct {
	mu           sync.Mutex
	seq          uint
	patients     map[uint]*models.Patient
	doctors      map[uint]*models.Doctor
	treatments   map[uint]*models.Treatment
	rules        []models.TreatmentPercentage
	appointments map[uint]*models.Appointment
	payments     []models.Payment
	expenses     []models.Expense
	audits       []models.AuditLog

	// Failure injection
	failUpdateImage   error
	failPaymentCreate error
	failFindByPair    error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		patients:     make(map[uint]*models.Patient),
		doctors:      make(map[uint]*models.Doctor),
		treatments:   make(map[uint]*models.Treatment),
		appointments: make(map[uint]*models.Appointment),
	}
}

func (db *fakeDB) nextID() uint {
	db.seq++
	return db.seq
}

func (db *fakeDB) repos() *repository.Repositories {
	return &repository.Repositories{
		Patient:     &fakePatientRepo{db: db},
		Doctor:      &fakeDoctorRepo{db: db},
		Treatment:   &fakeTreatmentRepo{db: db},
		Percentage:  &fakePercentageRepo{db: db},
		Appointment: &fakeAppointmentRepo{db: db},
		Payment:     &fakePaymentRepo{db: db},
		Report:      &fakeReportRepo{db: db},
		Audit:       &fakeAuditRepo{db: db},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seeding helpers

func (db *fakeDB) addPatient(name string) *models.Patient {
	db.mu.Lock()
	defer db.mu.Unlock()
	p := &models.Patient{ID: db.nextID(), Name: name}
	db.patients[p.ID] = p
	return p
}

func (db *fakeDB) addDoctor(name string) *models.Doctor {
	db.mu.Lock()
	defer db.mu.Unlock()
	d := &models.Doctor{ID: db.nextID(), Name: name}
	db.doctors[d.ID] = d
	return d
}

func (db *fakeDB) addTreatment(name, baseCost string) *models.Treatment {
	db.mu.Lock()
	defer db.mu.Unlock()
	t := &models.Treatment{ID: db.nextID(), Name: name, BaseCost: dec(baseCost)}
	db.treatments[t.ID] = t
	return t
}

func (db *fakeDB) addAppointment(patientID, doctorID, treatmentID uint, date time.Time) *models.Appointment {
	db.mu.Lock()
	defer db.mu.Unlock()
	a := &models.Appointment{
		ID:          db.nextID(),
		PatientID:   patientID,
		DoctorID:    doctorID,
		TreatmentID: treatmentID,
		Date:        date,
		Status:      models.AppointmentStatusPending,
		Version:     1,
	}
	db.appointments[a.ID] = a
	return a
}

// addRule inserts a rule bypassing the unique pair, like legacy data would
func (db *fakeDB) addRule(treatmentID, doctorID uint, clinic, doctor string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.rules = append(db.rules, models.TreatmentPercentage{
		ID:               db.nextID(),
		TreatmentID:      treatmentID,
		DoctorID:         doctorID,
		ClinicPercentage: dec(clinic),
		DoctorPercentage: dec(doctor),
	})
}

func (db *fakeDB) addPayment(appointmentID uint, total, paid string, datePaid time.Time) models.Payment {
	db.mu.Lock()
	defer db.mu.Unlock()
	p := models.Payment{
		ID:            db.nextID(),
		AppointmentID: appointmentID,
		TotalAmount:   dec(total),
		PaidAmount:    dec(paid),
		ClinicShare:   dec(total).Div(decimal.NewFromInt(2)).RoundBank(2),
		PaymentMethod: models.PaymentMethodCash,
		DatePaid:      datePaid,
	}
	p.DoctorShare = p.TotalAmount.Sub(p.ClinicShare)
	db.payments = append(db.payments, p)
	return p
}

func (db *fakeDB) addExpense(amount string, date time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.expenses = append(db.expenses, models.Expense{ID: db.nextID(), Description: "expense", Amount: dec(amount), Date: date})
}

type fakeTxManager struct {
	db    *fakeDB
	calls int
}

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	m.calls++
	return fn(m.db.repos())
}

// Patients

type fakePatientRepo struct {
	repository.PatientRepository
	db *fakeDB
}

func (r *fakePatientRepo) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	patient.ID = r.db.nextID()
	cp := *patient
	r.db.patients[patient.ID] = &cp
	return nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.patients[patient.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = patient.Name
	existing.Age = patient.Age
	existing.Phone = patient.Phone
	return nil
}

func (r *fakePatientRepo) UpdateImage(ctx context.Context, id uint, imagePath, thumbnailPath *string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failUpdateImage != nil {
		return r.db.failUpdateImage
	}
	existing, ok := r.db.patients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.ImagePath = imagePath
	existing.ThumbnailPath = thumbnailPath
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.patients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.patients, id)
	return nil
}

// Doctors

type fakeDoctorRepo struct {
	repository.DoctorRepository
	db *fakeDB
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d, ok := r.db.doctors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

// Treatments

type fakeTreatmentRepo struct {
	repository.TreatmentRepository
	db *fakeDB
}

func (r *fakeTreatmentRepo) FindByID(ctx context.Context, id uint) (*models.Treatment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.treatments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

// Percentage rules

type fakePercentageRepo struct {
	repository.PercentageRuleRepository
	db *fakeDB
}

func (r *fakePercentageRepo) FindByPair(ctx context.Context, treatmentID, doctorID uint) ([]models.TreatmentPercentage, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failFindByPair != nil {
		return nil, r.db.failFindByPair
	}
	var found []models.TreatmentPercentage
	for _, rule := range r.db.rules {
		if rule.TreatmentID == treatmentID && rule.DoctorID == doctorID {
			found = append(found, rule)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID > found[j].ID })
	if len(found) > 2 {
		found = found[:2]
	}
	return found, nil
}

func (r *fakePercentageRepo) Upsert(ctx context.Context, rule *models.TreatmentPercentage) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.rules {
		existing := &r.db.rules[i]
		if existing.TreatmentID == rule.TreatmentID && existing.DoctorID == rule.DoctorID {
			existing.ClinicPercentage = rule.ClinicPercentage
			existing.DoctorPercentage = rule.DoctorPercentage
			rule.ID = existing.ID
			return nil
		}
	}
	rule.ID = r.db.nextID()
	r.db.rules = append(r.db.rules, *rule)
	return nil
}

func (r *fakePercentageRepo) List(ctx context.Context, treatmentID *uint) ([]models.TreatmentPercentage, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.TreatmentPercentage
	for _, rule := range r.db.rules {
		if treatmentID == nil || rule.TreatmentID == *treatmentID {
			out = append(out, rule)
		}
	}
	return out, nil
}

// Appointments

type fakeAppointmentRepo struct {
	repository.AppointmentRepository
	db *fakeDB
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) FindByIDWithDetails(ctx context.Context, id uint) (*models.Appointment, error) {
	a, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if t, ok := r.db.treatments[a.TreatmentID]; ok {
		a.Treatment = *t
	}
	return a, nil
}

func (r *fakeAppointmentRepo) FindByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.db.appointments {
		if a.PatientID != patientID {
			continue
		}
		cp := *a
		if t, ok := r.db.treatments[a.TreatmentID]; ok {
			cp.Treatment = *t
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	appointment.ID = r.db.nextID()
	cp := *appointment
	r.db.appointments[appointment.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.appointments[appointment.ID]
	if !ok || existing.Version != appointment.Version {
		return repository.ErrStaleObject
	}
	appointment.Version++
	cp := *appointment
	r.db.appointments[appointment.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.appointments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.appointments, id)
	return nil
}

// Payments

type fakePaymentRepo struct {
	repository.PaymentRepository
	db *fakeDB
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failPaymentCreate != nil {
		return r.db.failPaymentCreate
	}
	payment.ID = r.db.nextID()
	r.db.payments = append(r.db.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.payments {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePaymentRepo) List(ctx context.Context, filter repository.PaymentFilter) ([]models.Payment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.Payment
	for _, p := range r.db.payments {
		if filter.From != nil && p.DatePaid.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.DatePaid.After(*filter.To) {
			continue
		}
		if filter.AppointmentID != nil && p.AppointmentID != *filter.AppointmentID {
			continue
		}
		if filter.Method != "" && p.PaymentMethod != filter.Method {
			continue
		}
		if filter.PatientID != nil || filter.DoctorID != nil {
			a, ok := r.db.appointments[p.AppointmentID]
			if !ok {
				continue
			}
			if filter.PatientID != nil && a.PatientID != *filter.PatientID {
				continue
			}
			if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
				continue
			}
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DatePaid.Equal(out[j].DatePaid) {
			return out[i].ID < out[j].ID
		}
		return out[i].DatePaid.Before(out[j].DatePaid)
	})
	return out, nil
}

func (r *fakePaymentRepo) CountByAppointment(ctx context.Context, appointmentID uint) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, p := range r.db.payments {
		if p.AppointmentID == appointmentID {
			n++
		}
	}
	return n, nil
}

func (r *fakePaymentRepo) SumPaidByAppointments(ctx context.Context, ids []uint) (map[uint]decimal.Decimal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	sums := make(map[uint]decimal.Decimal)
	for _, p := range r.db.payments {
		if wanted[p.AppointmentID] {
			sums[p.AppointmentID] = sums[p.AppointmentID].Add(p.PaidAmount)
		}
	}
	return sums, nil
}

func (r *fakePaymentRepo) FindOrphans(ctx context.Context) ([]models.Payment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.Payment
	for _, p := range r.db.payments {
		if _, ok := r.db.appointments[p.AppointmentID]; !ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) EachBatch(ctx context.Context, batchSize int, fn func(batch []models.Payment) error) error {
	r.db.mu.Lock()
	all := append([]models.Payment(nil), r.db.payments...)
	r.db.mu.Unlock()
	for start := 0; start < len(all); start += batchSize {
		end := start + batchSize
		if end > len(all) {
			end = len(all)
		}
		if err := fn(all[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// Reports

type fakeReportRepo struct {
	repository.ReportRepository
	db *fakeDB
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func (r *fakeReportRepo) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.db.payments {
		if within(p.DatePaid, from, to) {
			total = total.Add(p.PaidAmount)
		}
	}
	return total, nil
}

func (r *fakeReportRepo) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	total := decimal.Zero
	for _, e := range r.db.expenses {
		if within(e.Date, from, to) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// Audit

type fakeAuditRepo struct {
	repository.AuditRepository
	db *fakeDB
}

func (r *fakeAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	entry.ID = r.db.nextID()
	r.db.audits = append(r.db.audits, *entry)
	return nil
}

func (db *fakeDB) auditActions() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	var actions []string
	for _, a := range db.audits {
		actions = append(actions, a.Action)
	}
	return actions
}

// fixture wires the ledger services against a fresh fakeDB. Audit writes are synchronous.
type fixture struct {
	db          *fakeDB
	tx          *fakeTxManager
	audit       *AuditService
	percentages *PercentageService
	payments    *PaymentService
	reports     *ReportService
}

func newFixture(strict bool) *fixture {
	db := newFakeDB()
	repos := db.repos()
	tx := &fakeTxManager{db: db}
	audit := NewAuditService(repos.Audit, nil)
	percentages := NewPercentageService(repos.Percentage, tx, audit, strict, time.Second)

	return &fixture{
		db:          db,
		tx:          tx,
		audit:       audit,
		percentages: percentages,
		payments:    NewPaymentService(repos.Payment, tx, percentages, audit, time.Second),
		reports:     NewReportService(repos.Patient, repos.Appointment, repos.Payment, repos.Report, time.Second),
	}
}
