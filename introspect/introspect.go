// Package introspect extracts the canonical schema model from a live
// PostgreSQL database, as a third input source next to SQL text and
// JSON/YAML schema documents.
package introspect

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ridoystarlord/schemaviz/database"
	"github.com/ridoystarlord/schemaviz/schema"
)

// querier is the slice of pgxpool.Pool the loaders need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// IntrospectSchema reads tables, columns, primary keys and foreign keys
// from the public schema of the connected database.
func IntrospectSchema(ctx context.Context) (*schema.Schema, error) {
	pool, err := database.GetPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to get connection pool: %v", err)
	}

	tablesQuery := `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
	ORDER BY table_name;
	`

	rows, err := pool.Query(ctx, tablesQuery)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %v", err)
	}
	var tableNames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning table name: %v", err)
		}
		tableNames = append(tableNames, name)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating table rows: %v", rows.Err())
	}

	s := &schema.Schema{}
	for _, name := range tableNames {
		table := schema.NewTable(name)
		if err := loadColumns(ctx, pool, &table); err != nil {
			return nil, err
		}
		if err := loadPrimaryKeys(ctx, pool, &table); err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, table)
	}

	if err := loadForeignKeys(ctx, pool, s); err != nil {
		return nil, err
	}
	return s, nil
}

func loadColumns(ctx context.Context, pool querier, table *schema.Table) error {
	query := `
	SELECT column_name, data_type, is_nullable
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = $1
	ORDER BY ordinal_position;
	`
	rows, err := pool.Query(ctx, query, table.Name)
	if err != nil {
		return fmt.Errorf("querying columns for %s: %v", table.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, dataType, isNullable string
		if err := rows.Scan(&name, &dataType, &isNullable); err != nil {
			return fmt.Errorf("scanning column for %s: %v", table.Name, err)
		}
		table.Columns = append(table.Columns, schema.Column{
			Name:     name,
			Type:     dataType,
			Nullable: isNullable == "YES",
		})
	}
	return rows.Err()
}

func loadPrimaryKeys(ctx context.Context, pool querier, table *schema.Table) error {
	query := `
	SELECT kcu.column_name
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
	  ON tc.constraint_name = kcu.constraint_name
	 AND tc.table_schema = kcu.table_schema
	WHERE tc.table_schema = 'public'
	  AND tc.table_name = $1
	  AND tc.constraint_type = 'PRIMARY KEY';
	`
	rows, err := pool.Query(ctx, query, table.Name)
	if err != nil {
		return fmt.Errorf("querying primary keys for %s: %v", table.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var column string
		if err := rows.Scan(&column); err != nil {
			return fmt.Errorf("scanning primary key for %s: %v", table.Name, err)
		}
		if col, ok := table.ColumnByName(column); ok {
			col.PrimaryKey = true
			col.Nullable = false
		}
	}
	return rows.Err()
}

func loadForeignKeys(ctx context.Context, pool querier, s *schema.Schema) error {
	query := `
	SELECT tc.table_name, kcu.column_name, ccu.table_name, ccu.column_name
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
	  ON tc.constraint_name = kcu.constraint_name
	 AND tc.table_schema = kcu.table_schema
	JOIN information_schema.constraint_column_usage ccu
	  ON tc.constraint_name = ccu.constraint_name
	 AND tc.table_schema = ccu.table_schema
	WHERE tc.table_schema = 'public'
	  AND tc.constraint_type = 'FOREIGN KEY';
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("querying foreign keys: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fromTable, fromColumn, toTable, toColumn string
		if err := rows.Scan(&fromTable, &fromColumn, &toTable, &toColumn); err != nil {
			return fmt.Errorf("scanning foreign key: %v", err)
		}
		if table, ok := s.TableByID(fromTable); ok {
			if col, ok := table.ColumnByName(fromColumn); ok {
				col.ForeignKey = true
				col.References = &schema.Reference{Table: toTable, Column: toColumn}
			}
		}
		s.Relationships = append(s.Relationships,
			schema.NewRelationship(fromTable, fromColumn, toTable, toColumn))
	}
	return rows.Err()
}
