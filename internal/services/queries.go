package services

// queryTableExists reports whether a relation with the given name is
// visible on the current search path.
const queryTableExists = `SELECT to_regclass($1) IS NOT NULL`
