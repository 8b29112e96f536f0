package analytics

const (
	// conditional upsert keyed by the unique composite key. Creation and the
	// counter arithmetic are a single atomic step at the store: if no record
	// exists one is created with the triggering counter at 1, otherwise the
	// store applies a relative increment to the current value. The caller
	// never computes counter values.
	mutationUpsertAnalytic = `
		mutation UpsertAnalytic($key: String!, $type: String!, $slug: String!, $views: Int!, $clicks: Int!) {
			upsertAnalytic(
				where: { compositeKey: $key }
				upsert: {
					create: { compositeKey: $key, type: $type, slug: $slug, views: $views, clicks: $clicks }
					update: { views: { increment: $views }, clicks: { increment: $clicks } }
				}
			) {
				id
				type
				slug
				views
				clicks
				stage
				updatedAt
			}
		}
	`

	mutationPublishAnalytic = `
		mutation PublishAnalytic($id: ID!) {
			publishAnalytic(where: { id: $id }) {
				id
				stage
			}
		}
	`

	queryAnalyticsByTypeAndSlug = `
		query GetAnalytics($type: String!, $slug: String!) {
			analytics(where: { type: $type, slug: $slug }) {
				id
				type
				slug
				views
				clicks
				stage
				updatedAt
			}
		}
	`

	queryAnalyticsByType = `
		query AnalyticsByType($type: String!, $first: Int!) {
			analytics(where: { type: $type }, orderBy: views_DESC, first: $first) {
				id
				type
				slug
				views
				clicks
				stage
				updatedAt
			}
		}
	`

	queryAllAnalytics = `
		query AllAnalytics($first: Int!) {
			analytics(orderBy: views_DESC, first: $first) {
				id
				type
				slug
				views
				clicks
				stage
				updatedAt
			}
		}
	`
)
