package webprofiler

import (
	"regexp"

	"flowtrack/pkg/domain"
)

// signature pairs a compiled matcher with the technology it identifies.
type signature struct {
	re   *regexp.Regexp
	tech domain.TechPattern
}

// presenceHeaders identify a technology by the mere presence of a
// platform-specific response header.
var presenceHeaders = map[string]domain.TechPattern{ //nolint: gochecknoglobals
	"Cf-Ray":                 {Name: "Cloudflare", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh},
	"X-Shopify-Stage":        {Name: "Shopify", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh},
	"X-Wix-Renderer-Server":  {Name: "Wix", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh},
	"X-Vercel-Id":            {Name: "Vercel", Category: domain.TechCategoryHosting, Confidence: domain.TechConfidenceHigh},
	"X-Amz-Cf-Id":            {Name: "AWS CloudFront", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh},
	"X-Nf-Request-Id":        {Name: "Netlify", Category: domain.TechCategoryHosting, Confidence: domain.TechConfidenceHigh},
}

// valueHeaders identify a technology by its name appearing in the value of a
// generic header like Server or X-Powered-By.
var valueHeaders = map[string][]domain.TechPattern{ //nolint: gochecknoglobals
	"X-Powered-By": {
		{Name: "Express.js", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh},
		{Name: "ASP.NET", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh},
		{Name: "PHP", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh},
		{Name: "Next.js", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh},
	},
	"Server": {
		{Name: "Cloudflare", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh},
		{Name: "Nginx", Category: domain.TechCategoryHosting, Confidence: domain.TechConfidenceHigh},
		{Name: "Apache", Category: domain.TechCategoryHosting, Confidence: domain.TechConfidenceHigh},
		{Name: "Microsoft-IIS", Category: domain.TechCategoryHosting, Confidence: domain.TechConfidenceHigh},
	},
}

// generatorPatterns match substrings of the generator meta tag content.
var generatorPatterns = []struct { //nolint: gochecknoglobals
	substring string
	tech      domain.TechPattern
}{
	{"WordPress", domain.TechPattern{Name: "WordPress", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Drupal", domain.TechPattern{Name: "Drupal", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Joomla", domain.TechPattern{Name: "Joomla", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Shopify", domain.TechPattern{Name: "Shopify", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh}},
	{"Wix", domain.TechPattern{Name: "Wix", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Squarespace", domain.TechPattern{Name: "Squarespace", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Webflow", domain.TechPattern{Name: "Webflow", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Ghost", domain.TechPattern{Name: "Ghost", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Hugo", domain.TechPattern{Name: "Hugo", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Jekyll", domain.TechPattern{Name: "Jekyll", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{"Contentful", domain.TechPattern{Name: "Contentful", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
}

// metaAttributePatterns identify a technology when a meta tag with the given
// name attribute is present at all.
var metaAttributePatterns = []struct { //nolint: gochecknoglobals
	attr string
	tech domain.TechPattern
}{
	{"shopify-checkout-api-token", domain.TechPattern{Name: "Shopify", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh}},
	{"google-site-verification", domain.TechPattern{Name: "Google Services", Category: domain.TechCategoryOther, Confidence: domain.TechConfidenceMedium}},
}

var scriptPatterns = []signature{ //nolint: gochecknoglobals
	// analytics
	{regexp.MustCompile(`google-analytics\.com/analytics\.js`), domain.TechPattern{Name: "Google Analytics (Universal)", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`googletagmanager\.com/gtag/js`), domain.TechPattern{Name: "Google Analytics 4", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`googletagmanager\.com/gtm\.js`), domain.TechPattern{Name: "Google Tag Manager", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`cdn\.segment\.(com|io)`), domain.TechPattern{Name: "Segment", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`cdn\.mxpnl\.com`), domain.TechPattern{Name: "Mixpanel", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`cdn\.amplitude\.com`), domain.TechPattern{Name: "Amplitude", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`static\.hotjar\.com`), domain.TechPattern{Name: "Hotjar", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`cdn\.heapanalytics\.com`), domain.TechPattern{Name: "Heap Analytics", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},

	// chat and support
	{regexp.MustCompile(`widget\.intercom\.io`), domain.TechPattern{Name: "Intercom", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`js\.driftt\.com`), domain.TechPattern{Name: "Drift", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`static\.zdassets\.com`), domain.TechPattern{Name: "Zendesk", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`client\.crisp\.chat`), domain.TechPattern{Name: "Crisp", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`code\.tidio\.co`), domain.TechPattern{Name: "Tidio", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`cdn\.livechatinc\.com`), domain.TechPattern{Name: "LiveChat", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},

	// crm and marketing
	{regexp.MustCompile(`js\.hs-(scripts|analytics)\.net`), domain.TechPattern{Name: "HubSpot", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`js\.hs-scripts\.com`), domain.TechPattern{Name: "HubSpot", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`pi\.pardot\.com`), domain.TechPattern{Name: "Salesforce Pardot", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`mktdns\.com`), domain.TechPattern{Name: "Marketo", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`assets\.calendly\.com`), domain.TechPattern{Name: "Calendly", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},

	// cdn and infrastructure
	{regexp.MustCompile(`cloudflare\.com`), domain.TechPattern{Name: "Cloudflare", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceMedium}},
	{regexp.MustCompile(`fastly\.net`), domain.TechPattern{Name: "Fastly", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`akamai\.net`), domain.TechPattern{Name: "Akamai", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh}},

	// payment
	{regexp.MustCompile(`js\.stripe\.com`), domain.TechPattern{Name: "Stripe", Category: domain.TechCategoryPayment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`paypal\.com/sdk`), domain.TechPattern{Name: "PayPal", Category: domain.TechCategoryPayment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`square\.com/v2/square\.js`), domain.TechPattern{Name: "Square", Category: domain.TechCategoryPayment, Confidence: domain.TechConfidenceHigh}},

	// error tracking
	{regexp.MustCompile(`browser\.sentry-cdn\.com`), domain.TechPattern{Name: "Sentry", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`d2wy8f7a9ursnm\.cloudfront\.net`), domain.TechPattern{Name: "Bugsnag", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh}},
}

var cookiePatterns = []signature{ //nolint: gochecknoglobals
	{regexp.MustCompile(`^__hs(sc|tc|src|fp)`), domain.TechPattern{Name: "HubSpot", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^hubspotutk$`), domain.TechPattern{Name: "HubSpot", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^_ga(_.*)?$`), domain.TechPattern{Name: "Google Analytics", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^_gid$`), domain.TechPattern{Name: "Google Analytics", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^visitor_id\d+$`), domain.TechPattern{Name: "Salesforce Pardot", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^pardot$`), domain.TechPattern{Name: "Salesforce Pardot", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^wordpress_`), domain.TechPattern{Name: "WordPress", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^wp-settings-`), domain.TechPattern{Name: "WordPress", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^_shopify_`), domain.TechPattern{Name: "Shopify", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^cart$`), domain.TechPattern{Name: "Shopify", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceMedium}},
	{regexp.MustCompile(`^_mkto_trk$`), domain.TechPattern{Name: "Marketo", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^__cf(duid|_bm)$`), domain.TechPattern{Name: "Cloudflare", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`^intercom-`), domain.TechPattern{Name: "Intercom", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
}

var urlPathPatterns = []signature{ //nolint: gochecknoglobals
	{regexp.MustCompile(`/wp-(content|includes|admin|json)/`), domain.TechPattern{Name: "WordPress", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`/(sites/default|modules)/`), domain.TechPattern{Name: "Drupal", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceMedium}},
	{regexp.MustCompile(`/administrator/`), domain.TechPattern{Name: "Joomla", Category: domain.TechCategoryCMS, Confidence: domain.TechConfidenceMedium}},
	{regexp.MustCompile(`/wc-ajax/`), domain.TechPattern{Name: "WooCommerce", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`/magento/`), domain.TechPattern{Name: "Magento", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`/_next/`), domain.TechPattern{Name: "Next.js", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`/_nuxt/`), domain.TechPattern{Name: "Nuxt.js", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`/___gatsby/`), domain.TechPattern{Name: "Gatsby", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`\.cloudfront\.net`), domain.TechPattern{Name: "AWS CloudFront", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`\.fastly\.net`), domain.TechPattern{Name: "Fastly", Category: domain.TechCategoryCDN, Confidence: domain.TechConfidenceHigh}},
}

var dnsTxtPatterns = []signature{ //nolint: gochecknoglobals
	// verification tokens
	{regexp.MustCompile(`hubspot-developer-verification`), domain.TechPattern{Name: "HubSpot", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`pardot`), domain.TechPattern{Name: "Salesforce Pardot", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`salesforce-site-verification`), domain.TechPattern{Name: "Salesforce", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`zoho-verification`), domain.TechPattern{Name: "Zoho CRM", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`marketo-verification`), domain.TechPattern{Name: "Marketo", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`mixpanel-domain-verify`), domain.TechPattern{Name: "Mixpanel", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`stripe-verification`), domain.TechPattern{Name: "Stripe", Category: domain.TechCategoryPayment, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`docker-verification`), domain.TechPattern{Name: "Docker", Category: domain.TechCategoryDevelopment, Confidence: domain.TechConfidenceHigh}},

	// SPF includes
	{regexp.MustCompile(`include:_spf\.salesforce\.com`), domain.TechPattern{Name: "Salesforce Marketing Cloud", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:servers\.mcsv\.net`), domain.TechPattern{Name: "MailChimp", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:sendgrid\.net`), domain.TechPattern{Name: "SendGrid", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:spf\.mtasv\.net`), domain.TechPattern{Name: "MailerSend", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:_spf\.sendinblue\.com`), domain.TechPattern{Name: "Sendinblue", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:amazonses\.com`), domain.TechPattern{Name: "AWS SES", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:_spf\.google\.com`), domain.TechPattern{Name: "Google Workspace", Category: domain.TechCategoryOther, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`include:spf\.protection\.outlook\.com`), domain.TechPattern{Name: "Microsoft 365", Category: domain.TechCategoryOther, Confidence: domain.TechConfidenceHigh}},
}

var jsVariablePatterns = []signature{ //nolint: gochecknoglobals
	// analytics
	{regexp.MustCompile(`window\.(ga|_gaq)\s*=`), domain.TechPattern{Name: "Google Analytics", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.gtag\s*=`), domain.TechPattern{Name: "Google Analytics 4", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.analytics\s*=`), domain.TechPattern{Name: "Segment", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.mixpanel\s*=`), domain.TechPattern{Name: "Mixpanel", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.amplitude\s*=`), domain.TechPattern{Name: "Amplitude", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},

	// chat
	{regexp.MustCompile(`window\.Intercom\s*=`), domain.TechPattern{Name: "Intercom", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.drift\s*=`), domain.TechPattern{Name: "Drift", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.zE\s*=`), domain.TechPattern{Name: "Zendesk", Category: domain.TechCategoryChat, Confidence: domain.TechConfidenceHigh}},

	// crm and marketing
	{regexp.MustCompile(`window\._hsq\s*=`), domain.TechPattern{Name: "HubSpot", Category: domain.TechCategoryCRM, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.Calendly\s*=`), domain.TechPattern{Name: "Calendly", Category: domain.TechCategoryMarketing, Confidence: domain.TechConfidenceHigh}},

	// ecommerce and tag management
	{regexp.MustCompile(`window\.Shopify\s*=`), domain.TechPattern{Name: "Shopify", Category: domain.TechCategoryEcommerce, Confidence: domain.TechConfidenceHigh}},
	{regexp.MustCompile(`window\.dataLayer\s*=`), domain.TechPattern{Name: "Google Tag Manager", Category: domain.TechCategoryAnalytics, Confidence: domain.TechConfidenceHigh}},
}
