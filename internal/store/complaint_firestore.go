package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
)

// Reference collections written next to the complaint collection by Seed.
const (
	categoriesCollection = "categorias"
	customersCollection  = "clientes"
	employeesCollection  = "empleados"
)

// complaintFirestoreStore keeps complaints as denormalised documents: the
// customer, category and assignee names are copied onto each complaint.
type complaintFirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewComplaintFirestoreStore(client *firestore.Client, collection string) *complaintFirestoreStore {
	return &complaintFirestoreStore{client: client, collection: collection}
}

func (s *complaintFirestoreStore) complaints() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func (s *complaintFirestoreStore) StreamRecords(ctx context.Context, handle func(*models.ComplaintRecord) error) error {
	iter := s.complaints().Select("status", "recordedAt", "createdAt").Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return errs.NewDatabaseError("read", "failed to query complaint records", err)
		}
		var r models.ComplaintRecord
		if err := doc.DataTo(&r); err != nil {
			return errs.NewDatabaseError("read", "failed to parse complaint record", err)
		}
		if err := handle(&r); err != nil {
			return err
		}
	}
}

func (s *complaintFirestoreStore) List(ctx context.Context, q dto.ComplaintQuery, handle func(*models.Complaint) error) error {
	query := s.complaints().Query
	if q.Status != nil {
		query = query.Where("status", "==", *q.Status)
	}
	iter := query.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return errs.NewDatabaseError("read", "failed to query complaints", err)
		}
		c, err := complaintFromDoc(doc)
		if err != nil {
			return err
		}
		if err := handle(c); err != nil {
			return err
		}
	}
}

func (s *complaintFirestoreStore) Get(ctx context.Context, id string) (*models.Complaint, error) {
	doc, err := s.complaints().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("complaint not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get complaint", err)
	}
	return complaintFromDoc(doc)
}

func (s *complaintFirestoreStore) Count(ctx context.Context) (int, error) {
	docs, err := s.complaints().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count complaints", err)
	}
	return len(docs), nil
}

// Ping reads at most one document; Firestore has no server clock to report,
// so the local time is returned.
func (s *complaintFirestoreStore) Ping(ctx context.Context) (time.Time, error) {
	iter := s.complaints().Select().Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return time.Time{}, errs.NewDatabaseError("read", "connection check failed", err)
	}
	return time.Now(), nil
}

type seedDoc struct {
	ref  *firestore.DocumentRef
	data any
}

// Seed writes the reference collections and the denormalised complaints with
// a BulkWriter. Document ids are random UUIDs.
func (s *complaintFirestoreStore) Seed(ctx context.Context, data dto.SampleData) (dto.SeedResult, error) {
	var result dto.SeedResult
	if err := validateSample(data); err != nil {
		return result, err
	}

	now := time.Now()
	docs := make([]seedDoc, 0, len(data.Categories)+len(data.Customers)+len(data.Employees)+len(data.Complaints))

	categories := make([]models.Category, len(data.Categories))
	for i, c := range data.Categories {
		c.ID = uuid.NewString()
		categories[i] = c
		docs = append(docs, seedDoc{s.client.Collection(categoriesCollection).Doc(c.ID), c})
	}
	customers := make([]models.Customer, len(data.Customers))
	for i, c := range data.Customers {
		c.ID = uuid.NewString()
		customers[i] = c
		docs = append(docs, seedDoc{s.client.Collection(customersCollection).Doc(c.ID), c})
	}
	employees := make([]models.Employee, len(data.Employees))
	for i, e := range data.Employees {
		emp := models.Employee{ID: uuid.NewString(), FullName: e.FullName, Email: e.Email}
		if e.Category != nil {
			emp.CategoryID = categories[*e.Category].ID
		}
		employees[i] = emp
		docs = append(docs, seedDoc{s.client.Collection(employeesCollection).Doc(emp.ID), emp})
	}
	for _, sc := range data.Complaints {
		recordedAt := sc.RecordedAt
		c := models.Complaint{
			ID:            uuid.NewString(),
			CustomerName:  customers[sc.Customer].FullName,
			CustomerEmail: customers[sc.Customer].Email,
			Description:   sc.Description,
			Category:      categories[sc.Category].Name,
			Status:        sc.Status,
			RecordedAt:    &recordedAt,
			CreatedAt:     &now,
		}
		if sc.Assignee != nil {
			c.AssignedTo = employees[*sc.Assignee].FullName
		}
		docs = append(docs, seedDoc{s.complaints().Doc(c.ID), c})
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, d := range docs {
		job, err := bw.Create(d.ref, d.data)
		if err != nil {
			bw.End()
			return result, errs.NewDatabaseError("create", "failed to queue sample document", err)
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return result, errs.NewDatabaseError("create", "failed to write sample document", err)
		}
	}

	return dto.SeedResult{
		Categories: len(categories),
		Customers:  len(customers),
		Employees:  len(employees),
		Complaints: len(data.Complaints),
	}, nil
}

func complaintFromDoc(doc *firestore.DocumentSnapshot) (*models.Complaint, error) {
	var c models.Complaint
	if err := doc.DataTo(&c); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse complaint data", err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}
