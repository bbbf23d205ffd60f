package seed

import "github.com/mikey/safe-inbox/internal/core"

// preloaded is the built-in demo inbox
var preloaded = []core.Message{
	{
		ID:              "g1",
		Sender:          "Sarah Jenkins",
		SenderEmail:     "s.jenkins@techcorp.com",
		Subject:         "Interview Invitation: Senior Frontend Engineer",
		Body:            "Hi, \n\nWe were impressed with your profile and would like to invite you for a technical interview. Please let us know your availability for this coming Thursday.",
		Preview:         "We were impressed with your profile and would...",
		Date:            "Oct 24",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g2",
		Sender:          "CloudBank Support",
		SenderEmail:     "support@cloudbank.com",
		Subject:         "Monthly Transaction Statement - September 2024",
		Body:            "Your monthly account statement for September is now available for download via our secure online portal. Log in to view details.",
		Preview:         "Your monthly account statement for September...",
		Date:            "Oct 23",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g3",
		Sender:          "Registrar Office",
		SenderEmail:     "registrar@state-university.edu",
		Subject:         "Fall Semester Results Published",
		Body:            "Dear Student, the results for the Fall 2024 final examinations have been published on the student portal. Please check your grades.",
		Preview:         "Dear Student, the results for the Fall 2024...",
		Date:            "Oct 22",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g4",
		Sender:          "Project Mercury",
		SenderEmail:     "notifications@slack.com",
		Subject:         "New Message from Team Lead",
		Body:            "Hey team, just a reminder about our standup at 10 AM tomorrow. We need to finalize the sprint plan.",
		Preview:         "Hey team, just a reminder about our standup...",
		Date:            "Oct 22",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g5",
		Sender:          "SkyHigh Airlines",
		SenderEmail:     "bookings@skyhigh.com",
		Subject:         "Flight Confirmation: SH-402 to London",
		Body:            "Your booking for flight SH-402 is confirmed. Departure: 10th Nov, 14:00. Terminal 4. Check-in online 24h prior.",
		Preview:         "Your booking for flight SH-402 is confirmed...",
		Date:            "Oct 21",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g6",
		Sender:          "Marketing Director",
		SenderEmail:     "director@agency.io",
		Subject:         "Q4 Project Approval",
		Body:            "Good news! The client has approved the budget for the Mercury campaign. We are clear to start production next week.",
		Preview:         "Good news! The client has approved the budget...",
		Date:            "Oct 20",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g7",
		Sender:          "HR Global",
		SenderEmail:     "internships@global-inc.com",
		Subject:         "Internship Selection: Congratulations!",
		Body:            "We are pleased to offer you the Summer Internship position at our New York office. Attached is the offer letter.",
		Preview:         "We are pleased to offer you the Summer Internship...",
		Date:            "Oct 19",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g8",
		Sender:          "Store Logistics",
		SenderEmail:     "shipping@gadgetstore.com",
		Subject:         "Your Order #9821 has Shipped",
		Body:            "Your package containing the \"Ultra-Wide Monitor\" has been handed to the courier. Tracking ID: GAD-102931.",
		Preview:         "Your package containing the \"Ultra-Wide Monitor\"...",
		Date:            "Oct 18",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g9",
		Sender:          "Accounts Payable",
		SenderEmail:     "billing@clientcorp.com",
		Subject:         "Payment Received: Invoice INV-452",
		Body:            "This is an automated notification confirming receipt of your payment for invoice INV-452. Thank you for your business.",
		Preview:         "This is an automated notification confirming...",
		Date:            "Oct 17",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "g10",
		Sender:          "LinkedIn",
		SenderEmail:     "messages-noreply@linkedin.com",
		Subject:         "John Doe wants to connect",
		Body:            "John Doe, Senior Architect at FinTech, has requested to join your professional network.",
		Preview:         "John Doe, Senior Architect at FinTech, has...",
		Date:            "Oct 16",
		InitialCategory: core.CategoryGenuine,
	},
	{
		ID:              "s1",
		Sender:          "Global Lottery",
		SenderEmail:     "winner@jackpot-random.xyz",
		Subject:         "YOU WON $5,000,000.00 CASH PRIZE!",
		Body:            "CONGRATULATIONS! Your email was selected as the winner of the international mega draw. Reply with your bank details to claim now!!",
		Preview:         "CONGRATULATIONS! Your email was selected...",
		Date:            "10:30 AM",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s2",
		Sender:          "Crypto Master",
		SenderEmail:     "invest@bit-double.biz",
		Subject:         "URGENT: Double your Bitcoin in 24 hours!",
		Body:            "Exclusive opportunity for top investors. Send 0.1 BTC to our wallet and receive 0.2 BTC back instantly. Limited time offer!",
		Preview:         "Exclusive opportunity for top investors. Send...",
		Date:            "09:15 AM",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s3",
		Sender:          "Security Alert",
		SenderEmail:     "admin@verify-account-suspension.tk",
		Subject:         "Your account will be DELETED in 2 hours",
		Body:            "Suspicious activity detected. To prevent immediate permanent deletion of your account, click here: http://secure-login-verify.xyz/fix",
		Preview:         "Suspicious activity detected. To prevent...",
		Date:            "Yesterday",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s4",
		Sender:          "Banking KYC",
		SenderEmail:     "noreply@bank-update-kyc.info",
		Subject:         "Fake KYC Update Required - Action Needed",
		Body:            "Due to new regulations, you must re-verify your identity. Failure to do so will result in card block. Update now: http://bit.ly/update-bank-info",
		Preview:         "Due to new regulations, you must re-verify...",
		Date:            "Yesterday",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s5",
		Sender:          "Amazon Support",
		SenderEmail:     "refund-department@amzn-orders.net",
		Subject:         "Your $499 Refund is Waiting",
		Body:            "We noticed a double charge on your last order. To claim your $499 refund, please fill out the form at the link below.",
		Preview:         "We noticed a double charge on your last order...",
		Date:            "Oct 24",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s6",
		Sender:          "PayPal Fraud",
		SenderEmail:     "service@pay-pal-security-verification.com",
		Subject:         "Unauthorized Access to your PayPal Wallet",
		Body:            "Someone from Russia tried to log in to your account. We have locked your funds. Log in here to unlock: http://pp-safety.com",
		Preview:         "Someone from Russia tried to log in to your...",
		Date:            "Oct 23",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s7",
		Sender:          "Investment Group",
		SenderEmail:     "wealth@get-rich-fast.ru",
		Subject:         "Retire in 6 months with this secret strategy",
		Body:            "Banks hate this one trick! Join our elite masterclass and earn $10,000 weekly from home. No experience needed.",
		Preview:         "Banks hate this one trick! Join our elite...",
		Date:            "Oct 22",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s8",
		Sender:          "Prince Al-Bakir",
		SenderEmail:     "family-fund@royal-legacy.ng",
		Subject:         "Urgent assistance needed with $40M transfer",
		Body:            "I am a member of the royal family. I have $40 million frozen in a Swiss account. I need a trusted partner to move the funds.",
		Preview:         "I am a member of the royal family. I have...",
		Date:            "Oct 21",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s9",
		Sender:          "Billing Dept",
		SenderEmail:     "invoice-scanner@outlook.com",
		Subject:         "Overdue Invoice #PDF-99281",
		Body:            "Please see the attached invoice for your recent purchase. If you did not make this purchase, open the file to dispute.",
		Preview:         "Please see the attached invoice for your...",
		Date:            "Oct 20",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "s10",
		Sender:          "Web Admin",
		SenderEmail:     "no-reply@short.url",
		Subject:         "New Shared Document",
		Body:            "A user has shared a private document with you. View here: http://t.co/9982asdf8",
		Preview:         "A user has shared a private document with...",
		Date:            "Oct 19",
		InitialCategory: core.CategorySpam,
	},
	{
		ID:              "p1",
		Sender:          "Flipkart",
		SenderEmail:     "promo@flipkart-deals.com",
		Subject:         "Big Billion Days: 80% OFF on Electronics!",
		Body:            "The biggest sale of the year is here. Grab your favorite smartphones, laptops, and more at unbeatable prices.",
		Preview:         "The biggest sale of the year is here. Grab...",
		Date:            "1 hour ago",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p2",
		Sender:          "Myntra",
		SenderEmail:     "style@myntra.com",
		Subject:         "Fashion Refresh Sale: Styles starting at $9",
		Body:            "New season, new wardrobe. Explore thousands of brands with massive discounts. Free shipping for members.",
		Preview:         "New season, new wardrobe. Explore thousands...",
		Date:            "2 hours ago",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p3",
		Sender:          "Zomato",
		SenderEmail:     "foodie@zomato-news.com",
		Subject:         "Hungry? 50% OFF on your favorite Biryani",
		Body:            "Friday night deals are live! Order from top-rated restaurants and get instant cashback on your wallet.",
		Preview:         "Friday night deals are live! Order from top...",
		Date:            "4 hours ago",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p4",
		Sender:          "HDFC Bank",
		SenderEmail:     "offers@hdfc.com",
		Subject:         "Credit Card Reward: $50 Cashback on Dining",
		Body:            "Use your Millennia card at any restaurant this weekend and earn 5% back. T&C apply.",
		Preview:         "Use your Millennia card at any restaurant...",
		Date:            "Oct 24",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p5",
		Sender:          "MakeMyTrip",
		SenderEmail:     "travel@mmt.com",
		Subject:         "Maldives Calling! Flat 30% OFF on Hotels",
		Body:            "Plan your dream vacation today. Exclusive flight+hotel combos starting from $599.",
		Preview:         "Plan your dream vacation today. Exclusive...",
		Date:            "Oct 23",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p6",
		Sender:          "Gold Gym",
		SenderEmail:     "membership@goldsgym.com",
		Subject:         "Join Now & Pay NOTHING until 2025!",
		Body:            "Commit to your fitness goals. 12-month membership deal with free personal trainer session.",
		Preview:         "Commit to your fitness goals. 12-month...",
		Date:            "Oct 22",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p7",
		Sender:          "H&M Fashion",
		SenderEmail:     "newsletter@hm.com",
		Subject:         "Final Clearance: Everything must go!",
		Body:            "Up to 70% off on last season collection. Visit our stores or shop online. Limited stock.",
		Preview:         "Up to 70% off on last season collection...",
		Date:            "Oct 21",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p8",
		Sender:          "PlayStore",
		SenderEmail:     "rewards@googleplay.com",
		Subject:         "You have a $5 Credit for your next app",
		Body:            "Redeem your reward on any premium app or game. Valid for the next 7 days.",
		Preview:         "Redeem your reward on any premium app or...",
		Date:            "Oct 20",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p9",
		Sender:          "Netflix",
		SenderEmail:     "info@netflix.com",
		Subject:         "Coming this month: New Seasons and Movies",
		Body:            "Check out the latest lineup of Netflix Originals. Your next favorite show is waiting.",
		Preview:         "Check out the latest lineup of Netflix Originals...",
		Date:            "Oct 19",
		InitialCategory: core.CategoryPromotions,
	},
	{
		ID:              "p10",
		Sender:          "Best Buy",
		SenderEmail:     "weekly-ad@bestbuy.com",
		Subject:         "Early Black Friday: 4K TVs from $199",
		Body:            "Why wait for November? Get Black Friday prices now on the hottest tech gadgets.",
		Preview:         "Why wait for November? Get Black Friday...",
		Date:            "Oct 18",
		InitialCategory: core.CategoryPromotions,
	},
}
