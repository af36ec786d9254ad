package catalog

import "finbuddy/internal/model"

var modules = []model.LearningModule{
	{
		ID:            "college-budgeting-basics",
		Title:         "College Budgeting Basics",
		Description:   "Learn how to create and stick to a budget as a student",
		Category:      "budgeting",
		Stage:         model.StageStudent,
		EstimatedTime: 4,
		Difficulty:    model.DifficultyBeginner,
		XPReward:      20,
		OrderIndex:    1,
		Content: `# College Budgeting Basics

## Why Budget as a Student?

Creating a budget in college helps you:
- Avoid unnecessary debt
- Build good financial habits early
- Make your money last longer
- Reduce financial stress

## The 50/30/20 Student Rule

For students, try this simplified approach:
- **50% Needs**: Tuition, textbooks, meals, rent
- **30% Wants**: Entertainment, eating out, hobbies
- **20% Savings**: Emergency fund, future goals

## Quick Budgeting Tips

1. **Track everything** for one week to see where money goes
2. **Use student discounts** whenever possible
3. **Cook more meals** instead of eating out
4. **Buy used textbooks** or rent them
5. **Set aside $25-50/month** for emergencies

## Action Steps

1. List all your income sources
2. List all your expenses
3. Find areas to cut back
4. Set up automatic savings, even if it's just $10/week

Remember: Even small amounts saved now will help build your financial future!`,
	},
	{
		ID:            "building-credit-in-college",
		Title:         "Building Credit in College",
		Description:   "How to start building good credit while in school",
		Category:      "credit",
		Stage:         model.StageStudent,
		EstimatedTime: 5,
		Difficulty:    model.DifficultyBeginner,
		XPReward:      25,
		OrderIndex:    2,
		Content: `# Building Credit in College

## Why Credit Matters

Good credit helps you:
- Get better rates on loans
- Qualify for apartments
- Sometimes get better job opportunities
- Save money in the long run

## How to Start Building Credit

### 1. Student Credit Cards
- Look for cards with no annual fee
- Start with a secured card if needed
- Keep credit utilization below 30%

### 2. Become an Authorized User
- Ask parents to add you to their card
- Their good payment history helps your credit

### 3. Credit Builder Loans
- Small loans designed to build credit
- You pay into savings while building credit

## Golden Rules of Credit

1. **Always pay on time** - Payment history is 35% of your score
2. **Keep balances low** - Use less than 30% of available credit
3. **Don't close old cards** - Length of credit history matters
4. **Check your report** - Use free services to monitor your score

## What NOT to Do

- Don't max out credit cards
- Don't apply for multiple cards at once
- Don't co-sign loans for friends
- Don't ignore your credit report

Building good credit takes time, but the earlier you start, the better off you'll be!`,
	},
	{
		ID:            "emergency-fund-essentials",
		Title:         "Emergency Fund Essentials",
		Description:   "How to build and maintain an emergency fund",
		Category:      "saving",
		Stage:         model.StageEarlyCareer,
		EstimatedTime: 4,
		Difficulty:    model.DifficultyBeginner,
		XPReward:      20,
		OrderIndex:    1,
		Content: `# Emergency Fund Essentials

## What is an Emergency Fund?

An emergency fund is money set aside for unexpected expenses like:
- Job loss
- Medical emergencies
- Car repairs
- Home repairs
- Other unexpected costs

## How Much Do You Need?

**Goal**: 3-6 months of living expenses

**Starting out**: Even $500-1000 can help with most emergencies

## Building Your Emergency Fund

### Step 1: Calculate Your Target
- Add up monthly expenses (rent, food, utilities, etc.)
- Multiply by 3-6 months
- This is your target amount

### Step 2: Start Small
- Begin with $25-50 per paycheck
- Increase as your income grows
- Automate the savings

### Step 3: Keep It Accessible
- High-yield savings account
- Money market account
- NOT in stocks or investments

## Where to Keep Emergency Funds

✅ **Good Options:**
- High-yield savings account
- Money market account
- Certificate of deposit (short-term)

❌ **Bad Options:**
- Checking account (too accessible)
- Stock market (too risky)
- Under your mattress (no growth)

## Quick Tips

1. **Automate it** - Set up automatic transfers
2. **Start today** - Even $10 is better than $0
3. **Use windfalls** - Tax refunds, bonuses, gifts
4. **Don't touch it** - Only for real emergencies

Your emergency fund is your financial safety net - prioritize building it!`,
	},
	{
		ID:            "investment-basics-for-beginners",
		Title:         "Investment Basics for Beginners",
		Description:   "Understanding the fundamentals of investing",
		Category:      "investing",
		Stage:         model.StageGeneral,
		EstimatedTime: 6,
		Difficulty:    model.DifficultyIntermediate,
		XPReward:      30,
		OrderIndex:    1,
		Content: `# Investment Basics for Beginners

## Why Invest?

Investing helps your money grow faster than inflation and savings accounts. It's essential for:
- Retirement planning
- Building wealth
- Reaching financial goals
- Protecting against inflation

## Types of Investments

### 1. Stocks
- Own shares of companies
- Higher risk, higher potential return
- Good for long-term growth

### 2. Bonds
- Loan money to companies/government
- Lower risk, steady returns
- Good for stability

### 3. Index Funds
- Own many stocks/bonds at once
- Instant diversification
- Perfect for beginners

### 4. ETFs (Exchange-Traded Funds)
- Like index funds but trade like stocks
- Low fees
- Great for beginners

## Investment Principles

### 1. Start Early
- Time is your biggest advantage
- Compound interest works magic over time

### 2. Diversify
- Don't put all eggs in one basket
- Spread risk across many investments

### 3. Stay Consistent
- Invest regularly, regardless of market conditions
- Dollar-cost averaging reduces risk

### 4. Keep Fees Low
- High fees eat into returns
- Choose low-cost index funds

## Getting Started

1. **Pay off high-interest debt first**
2. **Build emergency fund**
3. **Start with target-date funds or index funds**
4. **Invest consistently**
5. **Don't panic during market downturns**

## Common Mistakes to Avoid

- Trying to time the market
- Putting all money in one stock
- Panic selling during downturns
- Not starting early enough
- Paying high investment fees

Remember: Investing is a marathon, not a sprint. Start small, stay consistent, and let time work in your favor!`,
	},
}

// Modules returns a copy of the seed module catalog
func Modules() []model.LearningModule {
	return append([]model.LearningModule(nil), modules...)
}
