package catalog

const (
	queryProjects = `
		query Projects {
			projects(orderBy: createdAt_DESC) {
				id
				title
				description
				imageUrl
				tags
				githubUrl
				liveUrl
				category
				createdAt
			}
		}
	`

	queryProjectByID = `
		query ProjectById($id: ID!) {
			project(where: { id: $id }) {
				id
				title
				description
				imageUrl
				tags
				githubUrl
				liveUrl
				category
				createdAt
			}
		}
	`

	// plural fallback for CMS configurations where the singular lookup is
	// not exposed on the public content API
	queryProjectsByID = `
		query ProjectsById($id: ID!) {
			projects(where: { id: $id }, first: 1) {
				id
				title
				description
				imageUrl
				tags
				githubUrl
				liveUrl
				category
				createdAt
			}
		}
	`

	queryBlogPosts = `
		query BlogPosts {
			blogPosts(orderBy: publishedAt_DESC) {
				id
				slug
				title
				excerpt
				coverImageUrl
				readTime
				publishedAt
			}
		}
	`

	queryBlogPostBySlug = `
		query BlogPostBySlug($slug: String!) {
			blogPost(where: { slug: $slug }) {
				id
				slug
				title
				excerpt
				coverImageUrl
				readTime
				publishedAt
				content {
					raw
				}
				screenshots
			}
		}
	`

	queryBlogPostsBySlug = `
		query BlogPostsBySlug($slug: String!) {
			blogPosts(where: { slug: $slug }, first: 1) {
				id
				slug
				title
				excerpt
				coverImageUrl
				readTime
				publishedAt
				content {
					raw
				}
				screenshots
			}
		}
	`

	queryCaseStudyByID = `
		query CaseStudyById($id: ID!) {
			caseStudy(where: { id: $id }) {
				active
				challenges
				featured
				features
				gitHubUrl
				id
				liveUrl
				problem
				resultsOutcome
				shortDescription
				solution
				stage
				techStack
				title
				coverImage {
					url
				}
			}
		}
	`
)
