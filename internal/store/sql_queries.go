package store

const (
	createUser = `INSERT INTO users (username, password_hash, email)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, email, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, email, created_at
    FROM users
    WHERE username = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2
    WHERE username = $1;`

	// getOrCreateToken inserts candidateKey for the user unless a token
	// already exists, then returns whichever key is current. The primary key
	// on user_id guarantees at most one row ever wins. The no-op DO UPDATE
	// (rather than DO NOTHING plus a select) matters: on conflict it locks
	// the surviving row and RETURNING emits it even when a concurrent
	// session committed it mid-statement, so every caller gets exactly one
	// row back.
	getOrCreateToken = `INSERT INTO tokens (user_id, key)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET key = tokens.key
    RETURNING user_id, key, created_at;`

	findUserByTokenKey = `SELECT u.user_id, u.username, u.password_hash, u.email, u.created_at
    FROM tokens t
    JOIN users u ON u.user_id = t.user_id
    WHERE t.key = $1;`
)
