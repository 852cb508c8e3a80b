// Package store connects to the data store and manages sessions, checkups,
// and the user profile.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"bump/internal/checkup"
	"bump/internal/profile"
	"bump/internal/session"
	"bump/internal/timeutil"
)

const (
	sessionBucket = "sessions"
	checkupBucket = "checkups"
	profileBucket = "profile"
)

// profileKey is the single key in the profile bucket.
var profileKey = []byte("profile")

var errAlreadyRunning = errors.New(
	"is bump already running? Only one instance can be active at a time",
)

var buckets = []string{sessionBucket, checkupBucket, profileBucket}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// SaveSession stores a finalized session keyed by its start time.
func (c *Client) SaveSession(sess *session.Session) error {
	key := timeutil.ToKey(sess.StartTime)

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(key, value)
	})
}

// RecentSessions returns saved sessions newest first. The start-time keys
// sort chronologically, so walking the cursor backwards yields them in
// reverse order.
func (c *Client) RecentSessions(limit int) ([]session.Session, error) {
	var sessions []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			if limit > 0 && len(sessions) == limit {
				break
			}

			var sess session.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// SessionsInRange returns sessions started within the time bounds, oldest
// first.
func (c *Client) SessionsInRange(
	startTime, endTime time.Time,
) ([]session.Session, error) {
	var sessions []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		min := timeutil.ToKey(startTime)
		max := timeutil.ToKey(endTime)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var sess session.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// SaveCheckup creates or overwrites a checkup keyed by its identifier.
func (c *Client) SaveCheckup(ck *checkup.Checkup) error {
	value, err := json.Marshal(ck)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(checkupBucket)).Put([]byte(ck.ID), value)
	})
}

// GetCheckup retrieves a checkup by id, or nil when it does not exist.
func (c *Client) GetCheckup(id string) (*checkup.Checkup, error) {
	var ck *checkup.Checkup

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(checkupBucket)).Get([]byte(id))
		if len(v) == 0 {
			return nil
		}

		ck = &checkup.Checkup{}

		return json.Unmarshal(v, ck)
	})

	return ck, err
}

// DeleteCheckup removes a checkup record.
func (c *Client) DeleteCheckup(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(checkupBucket)).Delete([]byte(id))
	})
}

// Checkups returns every stored checkup sorted by appointment date.
func (c *Client) Checkups() ([]checkup.Checkup, error) {
	var checkups []checkup.Checkup

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(checkupBucket)).ForEach(func(_, v []byte) error {
			var ck checkup.Checkup

			err := json.Unmarshal(v, &ck)
			if err != nil {
				return err
			}

			checkups = append(checkups, ck)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	checkup.SortByDate(checkups)

	return checkups, nil
}

// GetProfile returns the stored user profile, or nil when onboarding has not
// completed yet.
func (c *Client) GetProfile() (*profile.Profile, error) {
	var p *profile.Profile

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(profileBucket)).Get(profileKey)
		if len(v) == 0 {
			return nil
		}

		p = &profile.Profile{}

		return json.Unmarshal(v, p)
	})

	return p, err
}

// SaveProfile stores the user profile record.
func (c *Client) SaveProfile(p *profile.Profile) error {
	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(profileBucket)).Put(profileKey, value)
	})
}

// Reset drops and recreates every bucket, wiping all sessions, checkups, and
// the profile in one transaction.
func (c *Client) Reset() error {
	return c.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			err := tx.DeleteBucket([]byte(name))
			if err != nil {
				return err
			}

			_, err = tx.CreateBucket([]byte(name))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			_, err = tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
