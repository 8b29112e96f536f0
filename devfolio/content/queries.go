package content

const (
	querySiteSettings = `
		query SiteSettings($singletonId: String!) {
			singletons(where: { singletonId: $singletonId }, first: 1) {
				id
				singletonId
				siteTitle
				siteDescription
				logoText
				footerAbout
				githubUrl
				linkedinUrl
				twitterUrl
				email
				stage
				updatedAt
			}
		}
	`

	mutationUpdateSiteSettings = `
		mutation UpdateSingleton($id: ID!, $data: SingletonUpdateInput!) {
			updateSingleton(where: { id: $id }, data: $data) {
				id
			}
		}
	`

	mutationPublishSiteSettings = `
		mutation PublishSingleton($id: ID!) {
			publishSingleton(where: { id: $id }) {
				id
				stage
			}
		}
	`

	queryHeroText = `
		query HeroText($singletonId: String!) {
			heroTexts(where: { singletonId: $singletonId }, first: 1) {
				id
				singletonId
				heading
				subHeading
				buttonText
				stage
				updatedAt
			}
		}
	`

	mutationUpdateHeroText = `
		mutation UpdateHeroText($id: ID!, $data: HeroTextUpdateInput!) {
			updateHeroText(where: { id: $id }, data: $data) {
				id
			}
		}
	`

	mutationPublishHeroText = `
		mutation PublishHeroText($id: ID!) {
			publishHeroText(where: { id: $id }) {
				id
				stage
			}
		}
	`

	queryAnnouncementBar = `
		query AnnouncementBar {
			announcementBars(first: 1) {
				id
				isVisible
				message
				linkText
				linkUrl
				backgroundColor
				textColor
				stage
				updatedAt
			}
		}
	`

	mutationUpdateAnnouncementBar = `
		mutation UpdateAnnouncementBar($id: ID!, $data: AnnouncementBarUpdateInput!) {
			updateAnnouncementBar(where: { id: $id }, data: $data) {
				id
			}
		}
	`

	mutationPublishAnnouncementBar = `
		mutation PublishAnnouncementBar($id: ID!) {
			publishAnnouncementBar(where: { id: $id }) {
				id
				stage
			}
		}
	`

	queryAboutSection = `
		query AboutSection {
			aboutSections(first: 1) {
				id
				isVisible
				title
				shortDescription
				longDescription
				resumeButtonText
				resumeLink
				profileImage {
					url
				}
				stage
				updatedAt
			}
		}
	`

	mutationUpdateAboutSection = `
		mutation UpdateAboutSection($id: ID!, $data: AboutSectionUpdateInput!) {
			updateAboutSection(where: { id: $id }, data: $data) {
				id
			}
		}
	`

	mutationPublishAboutSection = `
		mutation PublishAboutSection($id: ID!) {
			publishAboutSection(where: { id: $id }) {
				id
				stage
			}
		}
	`

	querySkills = `
		query Skills {
			skills(orderBy: level_DESC) {
				id
				name
				level
				category
				isVisible
				icon {
					url
				}
			}
		}
	`

	mutationUpdateSkill = `
		mutation UpdateSkill($id: ID!, $data: SkillUpdateInput!) {
			updateSkill(where: { id: $id }, data: $data) {
				id
			}
		}
	`

	mutationPublishSkill = `
		mutation PublishSkill($id: ID!) {
			publishSkill(where: { id: $id }) {
				id
				stage
			}
		}
	`

	queryHeroSection = `
		query HeroSection($singletonId: String!) {
			heroSections(where: { singletonId: $singletonId }, first: 1) {
				singletonId
				badgeText
				headingLine1
				headingHighlight
				subheading
				primaryButtonText
				primaryButtonHref
				secondaryButtonText
				secondaryButtonHref
				heroImageUrl {
					url
				}
			}
		}
	`

	queryCTASection = `
		query CtaSection {
			ctas(first: 1) {
				isVisible
				title
				description
				buttonText
				buttonLink
				backgroundColor
			}
		}
	`

	queryTestimonials = `
		query Testimonials {
			testimonials(orderBy: name_ASC) {
				name
				role
				message
				photo {
					url
				}
			}
		}
	`

	queryNavigation = `
		query Navigation($singletonId: String!) {
			navigation(where: { singletonId: $singletonId }) {
				singletonId
				links {
					label
					href
					order
				}
			}
		}
	`

	queryFooterLinks = `
		query FooterLinks {
			footerLinks(orderBy: order_ASC) {
				group
				label
				href
				order
			}
		}
	`

	queryFooterSection = `
		query FooterSection {
			footerSections(first: 1) {
				isVisible
				footerText
				quickLinks {
					label
					slug
				}
				socialLinks {
					github
					linkedin
					twitter
					instagram
				}
				contactInfo {
					email
					phone
					address
				}
			}
		}
	`

	querySEOSection = `
		query SeoSection($slug: String!) {
			seoSections(where: { slug: $slug }, first: 1) {
				metaTitle
				metaDescription
				keywords
				ogImage {
					url
				}
				url
			}
		}
	`
)
