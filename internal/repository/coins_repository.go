package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/pkg/cleanup"
	"github.com/youthlab/habitrack/pkg/entity"
)

// CoinsRepository is the coin ledger. coin_transactions is append-only,
// users.coins is a cache equal to the sum of the user's transaction
// amounts. Both writes happen in one database transaction so the ledger
// invariant survives crashes.
type CoinsRepository struct {
	conn PgConnection
}

func NewCoinsRepo(cfg DBConfig) *CoinsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for coinsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for coinsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CoinsRepository{
		conn: pool,
	}
}

func NewCoinsRepoWithConn(conn PgConnection) *CoinsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for coinsRepo: " + err.Error())
	}
	return &CoinsRepository{
		conn: conn,
	}
}

func (cr *CoinsRepository) AppendTransaction(ctx context.Context, coinTx *entity.CoinTransaction) (int, error) {
	return cr.appendInTx(ctx, coinTx, 0, false)
}

// AppendWithGrant appends a bonus transaction and records the granted
// tier in the same database transaction, so a crash can never pay a
// tier without remembering it.
func (cr *CoinsRepository) AppendWithGrant(ctx context.Context, coinTx *entity.CoinTransaction, tier int) (int, error) {
	return cr.appendInTx(ctx, coinTx, tier, true)
}

func (cr *CoinsRepository) appendInTx(ctx context.Context, coinTx *entity.CoinTransaction, tier int, recordGrant bool) (int, error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning ledger transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var balance int
	row := tx.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1 FOR UPDATE;`, coinTx.UserID)
	if err = row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("reading balance error: " + err.Error())
	}
	if coinTx.Type == entity.TxSpent && balance+coinTx.Amount < 0 {
		return 0, errorvalues.ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO coin_transactions (id, user_id, amount, type, source, description, related_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		coinTx.ID,
		coinTx.UserID,
		coinTx.Amount,
		string(coinTx.Type),
		string(coinTx.Source),
		coinTx.Description,
		coinTx.RelatedID,
		coinTx.Timestamp,
	)
	if err != nil {
		return 0, errors.New("appending transaction error: " + err.Error())
	}

	balance += coinTx.Amount
	_, err = tx.Exec(ctx, `UPDATE users SET coins = $1 WHERE id = $2;`, balance, coinTx.UserID)
	if err != nil {
		return 0, errors.New("updating balance error: " + err.Error())
	}

	if recordGrant {
		_, err = tx.Exec(ctx,
			`INSERT INTO bonus_grants (user_id, source, related_id, tier) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, source, related_id) DO UPDATE SET tier = EXCLUDED.tier;`,
			coinTx.UserID,
			string(coinTx.Source),
			coinTx.RelatedID,
			tier,
		)
		if err != nil {
			return 0, errors.New("recording bonus grant error: " + err.Error())
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing ledger transaction error: " + err.Error())
	}
	return balance, nil
}

func (cr *CoinsRepository) Balance(ctx context.Context, uid uuid.UUID) (int, error) {
	var balance int
	row := cr.conn.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("reading balance error: " + err.Error())
	}
	return balance, nil
}

func (cr *CoinsRepository) History(ctx context.Context, uid uuid.UUID, limit int) ([]entity.CoinTransaction, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, user_id, amount, type, source, description, related_id, created_at
		FROM coin_transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`,
		uid,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting transaction history error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.CoinTransaction, 0, limit)
	for rows.Next() {
		t := entity.CoinTransaction{}
		err = rows.Scan(&t.ID, &t.UserID, &t.Amount, (*string)(&t.Type), (*string)(&t.Source),
			&t.Description, &t.RelatedID, &t.Timestamp)
		if err != nil {
			return nil, errors.New("transaction row parsing error: " + err.Error())
		}
		result = append(result, t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected transaction rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CoinsRepository) LastGrantedTier(ctx context.Context, uid uuid.UUID, source entity.CoinSource, relatedID string) (int, error) {
	var tier int
	row := cr.conn.QueryRow(ctx,
		`SELECT tier FROM bonus_grants WHERE user_id = $1 AND source = $2 AND related_id = $3;`,
		uid,
		string(source),
		relatedID,
	)
	if err := row.Scan(&tier); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.New("reading granted tier error: " + err.Error())
	}
	return tier, nil
}
