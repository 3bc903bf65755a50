package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// MySQLRoomRepo stores rooms in the `rooms` table.  It implements the
// same RoomRepository port as the map-based backends so deployments
// that already run MySQL can keep the room catalogue there while the
// reservation engine stays on its own store.
//
// Expected schema:
//
//	CREATE TABLE rooms (
//	    id        VARCHAR(36)  PRIMARY KEY,
//	    name      VARCHAR(100) NOT NULL,
//	    capacity  INT          NOT NULL,
//	    is_active TINYINT(1)   NOT NULL DEFAULT 1
//	);
type MySQLRoomRepo struct{ DB *sql.DB }

// NewMySQLRoomRepo returns a room repository bound to the given database.
func NewMySQLRoomRepo(db *sql.DB) *MySQLRoomRepo { return &MySQLRoomRepo{DB: db} }

func (r *MySQLRoomRepo) Save(ctx context.Context, room *model.Room) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO rooms (id, name, capacity, is_active) VALUES (?,?,?,?)",
		room.ID, room.Name, room.Capacity, room.Active)
	return err
}

func (r *MySQLRoomRepo) Get(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, capacity, is_active FROM rooms WHERE id=? LIMIT 1",
		id).Scan(&room.ID, &room.Name, &room.Capacity, &room.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *MySQLRoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, capacity, is_active FROM rooms ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.Active); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *MySQLRoomRepo) Update(ctx context.Context, room *model.Room) error {
	// RowsAffected is 0 for a no-change UPDATE in MySQL, so existence
	// is checked explicitly instead.
	if _, err := r.Get(ctx, room.ID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE rooms SET name=?, capacity=?, is_active=? WHERE id=?",
		room.Name, room.Capacity, room.Active, room.ID)
	return err
}

func (r *MySQLRoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
