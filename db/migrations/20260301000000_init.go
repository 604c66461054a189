package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/openmarket/markethub/db/models"
)

/* Since this init will reflect the latest model fields when run on fresh db
make sure that when you add/remove columns in subsequent migrations IfNotExists/IfExists is used
otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// the model's unique:listings_asset_id_seller_id tag puts the
		// (asset_id, seller_id) constraint in the table definition itself
		_, err := db.NewCreateTable().Model((*models.Listing)(nil)).Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*models.Listing)(nil)).IfExists().Exec(ctx)
		return err
	})
}
