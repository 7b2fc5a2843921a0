package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// Postgres error codes the repository translates into domain errors
const (
	pqExclusionViolation = "23P01"
	pqCheckViolation     = "23514"
)

// PostgresRepo implements CatalogDB, ReservationDB and AuctionDB on PostgreSQL
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo wraps an open *sql.DB using the lib/pq driver
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// OpenPostgres opens and pings a database for dsn
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if it does not exist
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// GetCar returns a car by id
func (r *PostgresRepo) GetCar(ctx context.Context, carID string) (models.Car, error) {
	query := `
		SELECT id, owner_id, brand, model, color, image_url, is_for_rent, price_per_day
		FROM cars
		WHERE id = $1
	`

	var car models.Car
	err := r.db.QueryRowContext(ctx, query, carID).Scan(
		&car.CarID,
		&car.OwnerID,
		&car.Brand,
		&car.Model,
		&car.Color,
		&car.ImageURL,
		&car.IsForRent,
		&car.PricePerDay,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, fmt.Errorf("get car %s: %w", carID, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.Car{}, fmt.Errorf("get car %s: %w", carID, err)
	}
	return car, nil
}

// GetCarRentalInfo returns the rental terms of a car
func (r *PostgresRepo) GetCarRentalInfo(ctx context.Context, carID string) (models.CarRentalInfo, error) {
	query := `
		SELECT id, owner_id, is_for_rent, price_per_day
		FROM cars
		WHERE id = $1
	`

	var info models.CarRentalInfo
	err := r.db.QueryRowContext(ctx, query, carID).Scan(&info.CarID, &info.OwnerID, &info.IsForRent, &info.PricePerDay)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CarRentalInfo{}, fmt.Errorf("get car rental info %s: %w", carID, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.CarRentalInfo{}, fmt.Errorf("get car rental info %s: %w", carID, err)
	}
	return info, nil
}

// GetUser returns a user profile
func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (models.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&user.UserID, &user.Name, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("get user %s: %w", userID, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetOwnerAccount returns an owner's billing state
func (r *PostgresRepo) GetOwnerAccount(ctx context.Context, ownerID string) (models.OwnerAccount, error) {
	query := `
		SELECT owner_id, subscription_ends_at, trial_ends_at, suspended
		FROM owner_accounts
		WHERE owner_id = $1
	`

	var (
		account      models.OwnerAccount
		subscription sql.NullTime
		trial        sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&account.OwnerID, &subscription, &trial, &account.Suspended)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OwnerAccount{}, fmt.Errorf("get owner account %s: %w", ownerID, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.OwnerAccount{}, fmt.Errorf("get owner account %s: %w", ownerID, err)
	}
	account.SubscriptionEndsAt = timePtr(subscription)
	account.TrialEndsAt = timePtr(trial)
	return account, nil
}

const reservationColumns = `
	r.id, r.car_id, r.renter_id, r.start_date, r.end_date, r.total_price, r.status,
	r.notes, r.payment_transaction_id, r.payment_method, r.created_at,
	r.confirmed_at, r.cancelled_at, r.cancellation_reason`

// FindReservationsByCarAndRange returns holding reservations of a car intersecting [start, end)
func (r *PostgresRepo) FindReservationsByCarAndRange(ctx context.Context, carID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		WHERE r.car_id = $1
		  AND r.status = ANY($2)
		  AND r.start_date < $4
		  AND $3 < r.end_date
		  AND r.id <> $5
		ORDER BY r.start_date
	`

	statuses := make([]string, 0, len(models.HoldingStatuses))
	for _, s := range models.HoldingStatuses {
		statuses = append(statuses, string(s))
	}

	return r.queryReservations(ctx, "find reservations by car and range", query, carID, pq.Array(statuses), start, end, excludeID)
}

// GetReservation returns a reservation by id
func (r *PostgresRepo) GetReservation(ctx context.Context, id string) (models.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations r WHERE r.id = $1`

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, fmt.Errorf("get reservation %s: %w", id, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.Reservation{}, fmt.Errorf("get reservation %s: %w", id, err)
	}
	return res, nil
}

// InsertReservation stores a new reservation. An overlap caught by the
// exclusion constraint is reported as rentalerrors.ErrConflict.
func (r *PostgresRepo) InsertReservation(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	query := `
		INSERT INTO reservations (
			id, car_id, renter_id, start_date, end_date, total_price, status,
			notes, payment_transaction_id, payment_method, created_at,
			confirmed_at, cancelled_at, cancellation_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.CarID,
		res.RenterID,
		res.StartDate,
		res.EndDate,
		res.TotalPrice,
		string(res.Status),
		res.Notes,
		res.PaymentTransactionID,
		res.PaymentMethod,
		res.CreatedAt,
		nullTime(res.ConfirmedAt),
		nullTime(res.CancelledAt),
		res.CancellationReason,
	)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("insert reservation %s: %w", res.ID, translate(err))
	}
	return res, nil
}

// UpdateReservation replaces a stored reservation
func (r *PostgresRepo) UpdateReservation(ctx context.Context, res models.Reservation) error {
	query := `
		UPDATE reservations
		SET start_date = $2, end_date = $3, total_price = $4, status = $5, notes = $6,
		    payment_transaction_id = $7, payment_method = $8,
		    confirmed_at = $9, cancelled_at = $10, cancellation_reason = $11
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.StartDate,
		res.EndDate,
		res.TotalPrice,
		string(res.Status),
		res.Notes,
		res.PaymentTransactionID,
		res.PaymentMethod,
		nullTime(res.ConfirmedAt),
		nullTime(res.CancelledAt),
		res.CancellationReason,
	)
	if err != nil {
		return fmt.Errorf("update reservation %s: %w", res.ID, translate(err))
	}
	return requireAffected(result, "update reservation "+res.ID)
}

// DeleteReservation removes a reservation
func (r *PostgresRepo) DeleteReservation(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation %s: %w", id, err)
	}
	return requireAffected(result, "delete reservation "+id)
}

// ListReservationsByCar returns every reservation of a car ordered by start date
func (r *PostgresRepo) ListReservationsByCar(ctx context.Context, carID string) ([]models.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations r WHERE r.car_id = $1 ORDER BY r.start_date, r.id`
	return r.queryReservations(ctx, "list reservations by car", query, carID)
}

// ListReservationsByRenter returns every reservation of a renter ordered by start date
func (r *PostgresRepo) ListReservationsByRenter(ctx context.Context, renterID string) ([]models.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations r WHERE r.renter_id = $1 ORDER BY r.start_date, r.id`
	return r.queryReservations(ctx, "list reservations by renter", query, renterID)
}

// ListReservationsByOwner returns reservations of every car the owner lists
func (r *PostgresRepo) ListReservationsByOwner(ctx context.Context, ownerID string) ([]models.Reservation, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		JOIN cars c ON c.id = r.car_id
		WHERE c.owner_id = $1
		ORDER BY r.start_date, r.id
	`
	return r.queryReservations(ctx, "list reservations by owner", query, ownerID)
}

// ListReservationsByOwnerAndRange returns the owner's reservations intersecting [from, to)
func (r *PostgresRepo) ListReservationsByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time) ([]models.Reservation, error) {
	query := `
		SELECT` + reservationColumns + `
		FROM reservations r
		JOIN cars c ON c.id = r.car_id
		WHERE c.owner_id = $1
		  AND r.start_date < $3
		  AND $2 < r.end_date
		ORDER BY r.start_date, r.id
	`
	return r.queryReservations(ctx, "list reservations by owner and range", query, ownerID, from, to)
}

func (r *PostgresRepo) queryReservations(ctx context.Context, op, query string, args ...any) ([]models.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	reservations := make([]models.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var (
		res       models.Reservation
		status    string
		confirmed sql.NullTime
		cancelled sql.NullTime
	)
	err := row.Scan(
		&res.ID,
		&res.CarID,
		&res.RenterID,
		&res.StartDate,
		&res.EndDate,
		&res.TotalPrice,
		&status,
		&res.Notes,
		&res.PaymentTransactionID,
		&res.PaymentMethod,
		&res.CreatedAt,
		&confirmed,
		&cancelled,
		&res.CancellationReason,
	)
	if err != nil {
		return models.Reservation{}, err
	}
	res.Status = models.ReservationStatus(status)
	res.ConfirmedAt = timePtr(confirmed)
	res.CancelledAt = timePtr(cancelled)
	return res, nil
}

const auctionColumns = `
	id, car_id, owner_id, start_price_eur, buy_now_price_eur, starts_at, ends_at,
	is_active, description, issues, image_urls, video_urls`

// FindAuctionWithBids returns an auction and its bids in insertion order
func (r *PostgresRepo) FindAuctionWithBids(ctx context.Context, auctionID string) (models.Auction, error) {
	return findAuctionWithBids(ctx, r.db, auctionID)
}

// ListActiveAuctions returns flagged-active auctions that have not ended before now
func (r *PostgresRepo) ListActiveAuctions(ctx context.Context, now time.Time) ([]models.Auction, error) {
	const op = "list active auctions"
	query := `
		SELECT` + auctionColumns + `
		FROM auctions
		WHERE is_active AND ends_at >= $1
		ORDER BY starts_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	auctions := make([]models.Auction, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		index[a.AuctionID] = len(auctions)
		ids = append(ids, a.AuctionID)
		auctions = append(auctions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(ids) == 0 {
		return auctions, nil
	}

	bids, err := queryBids(ctx, r.db, `WHERE auction_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, b := range bids {
		i := index[b.AuctionID]
		auctions[i].Bids = append(auctions[i].Bids, b)
	}
	return auctions, nil
}

// AppendBid records a bid in a transaction that row-locks the auction
func (r *PostgresRepo) AppendBid(ctx context.Context, auctionID string, bid models.AuctionBid) (models.Auction, error) {
	op := "append bid to auction " + auctionID

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Auction{}, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx, `SELECT id FROM auctions WHERE id = $1 FOR UPDATE`, auctionID).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Auction{}, fmt.Errorf("%s: %w", op, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("%s: lock: %w", op, err)
	}

	query := `
		INSERT INTO auction_bids (id, auction_id, bidder_id, bidder_name, amount_eur, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	bidder := sql.NullString{String: bid.BidderID, Valid: bid.BidderID != ""}
	if _, err := tx.ExecContext(ctx, query, bid.BidID, auctionID, bidder, bid.BidderName, bid.AmountEur, bid.CreatedAt); err != nil {
		return models.Auction{}, fmt.Errorf("%s: insert: %w", op, err)
	}

	auction, err := findAuctionWithBids(ctx, tx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("%s: reload: %w", op, err)
	}
	if err := tx.Commit(); err != nil {
		return models.Auction{}, fmt.Errorf("%s: commit: %w", op, err)
	}
	return auction, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findAuctionWithBids(ctx context.Context, q queryer, auctionID string) (models.Auction, error) {
	query := `SELECT` + auctionColumns + ` FROM auctions WHERE id = $1`

	auction, err := scanAuction(q.QueryRowContext(ctx, query, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Auction{}, fmt.Errorf("find auction %s: %w", auctionID, rentalerrors.ErrNotFound)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("find auction %s: %w", auctionID, err)
	}

	bids, err := queryBids(ctx, q, `WHERE auction_id = $1`, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("find auction %s: %w", auctionID, err)
	}
	auction.Bids = bids
	return auction, nil
}

func queryBids(ctx context.Context, q queryer, where string, args ...any) ([]models.AuctionBid, error) {
	query := `
		SELECT id, auction_id, bidder_id, bidder_name, amount_eur, created_at
		FROM auction_bids
		` + where + `
		ORDER BY created_at, id
	`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bids: %w", err)
	}
	defer rows.Close()

	bids := make([]models.AuctionBid, 0)
	for rows.Next() {
		var (
			b      models.AuctionBid
			bidder sql.NullString
		)
		if err := rows.Scan(&b.BidID, &b.AuctionID, &bidder, &b.BidderName, &b.AmountEur, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		b.BidderID = bidder.String
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

func scanAuction(row rowScanner) (models.Auction, error) {
	var (
		a      models.Auction
		buyNow sql.NullFloat64
		issues pq.StringArray
		images pq.StringArray
		videos pq.StringArray
	)
	err := row.Scan(
		&a.AuctionID,
		&a.CarID,
		&a.OwnerID,
		&a.StartPriceEur,
		&buyNow,
		&a.StartsAt,
		&a.EndsAt,
		&a.IsActive,
		&a.Description,
		&issues,
		&images,
		&videos,
	)
	if err != nil {
		return models.Auction{}, err
	}
	if buyNow.Valid {
		v := buyNow.Float64
		a.BuyNowPriceEur = &v
	}
	a.Issues = []string(issues)
	a.ImageURLs = []string(images)
	a.VideoURLs = []string(videos)
	return a, nil
}

// translate maps constraint violations onto domain errors
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqExclusionViolation:
			return fmt.Errorf("%w: %s", rentalerrors.ErrConflict, pqErr.Constraint)
		case pqCheckViolation:
			return fmt.Errorf("%w: %s", rentalerrors.ErrInvalidInterval, pqErr.Constraint)
		}
	}
	return err
}

func requireAffected(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, rentalerrors.ErrNotFound)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
