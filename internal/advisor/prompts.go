package advisor

// Prompt templates for the grounded and general-purpose providers. The
// grounded prompts pin an exact JSON contract; the weather prompt asks for
// prose and is parsed heuristically instead.

const marketTrendPrompt = `Get today's (%s) real-time market price and trend data for %s in %s.
Focus on:
1. Today's actual market rates from the local APMC/mandi
2. Current supply-demand situation
3. Price comparison with last month

Return response STRICTLY as JSON with these exact fields:
{
  "current_price_range": "₹X-₹Y per quintal (include per kg also)",
  "last_updated": "current date in DD-MMM-YYYY format",
  "trend_direction": "increasing/decreasing/stable",
  "month_over_month_change_percent": "%% change with - for decrease",
  "supply_status": "current supply situation",
  "demand_status": "current demand situation",
  "market_yard": "name of APMC/mandi"
}`

const marketAdvicePrompt = `You are an experienced agricultural market analyst. Based on this CURRENT price trend data for %s in %s:
%s

Provide a real-time market analysis in JSON format with these exact fields:
{
  "recommended_action": "buy/hold/sell",
  "confidence": <float between 0-1>,
  "rationale": <detailed explanation including price trends and market conditions>,
  "alternate_markets": [<list of 2-3 nearby markets with potentially better prices>],
  "notes": <important insights about market timing, transportation considerations, and storage advice>,
  "price_forecast": <7-day price trend prediction>
}

Important:
1. Base your analysis on the CURRENT price and market conditions
2. Consider seasonal factors and local market dynamics
3. Respond ONLY with valid JSON
4. Be specific about price movements and market conditions`

const weatherForecastPrompt = `Provide current weather conditions and 7-day forecast for %s region relevant for %s cultivation.
Include:
- Current temperature, humidity, rainfall
- 7-day temperature highs/lows
- Rainfall predictions and amounts
- Wind conditions
- Any weather alerts or warnings
- Soil moisture considerations

Format as detailed weather report with specific measurements and dates.`

const schemeRefinePrompt = `You are a prompt-engineering assistant. Convert this user request into a clear and specific query for Government agriculture schemes.

User information:
Farmer name: %s
Region: %s
Crop: %s
Farm size: %s
Need: %s

Respond ONLY with a clear, concise search query to find the most relevant government schemes (no explanations).`

const schemeSearchPrompt = `Search for the following government agriculture scheme information:
%s

Provide detailed information on:
1. Scheme names and descriptions
2. Eligibility criteria
3. Benefits offered
4. Application process
5. Official government links

Return ONLY valid JSON with this structure:
{
  "schemes": [
    {
      "scheme_name": "string",
      "description": "string",
      "eligibility": "string",
      "benefits": "string",
      "application_process": "string",
      "official_link": "string"
    }
  ],
  "source": "string"
}

Include at least 2-3 schemes if available.`

const schemeExpandPrompt = `You are a government agriculture scheme advisor.
Based on the following user profile and scheme data, generate a detailed JSON response:

User Profile: %s
Scheme Data: %s

Required Output JSON:
{
  "matched_schemes": [
    {
      "name": "string",
      "description": "string",
      "eligibility": "string",
      "benefits": "string",
      "application_process": "string",
      "official_link": "string"
    }
  ],
  "personalized_recommendation": "string",
  "next_steps": "string"
}

Notes:
1. For matched_schemes, use the schemes from the provided scheme data
2. For personalized_recommendation, analyze how well each scheme matches the user's specific needs
3. For next_steps, provide clear actionable guidance on what the farmer should do next

Response MUST be valid JSON only.`

const profitRefinePrompt = `You are a query refinement assistant. Convert this user request into a structured query for predicting crop profit potential.

User information:
Region: %s
Crop: %s
Farm size: %s
Expected yield: %s
Cost factors: %s

Respond ONLY with a clear, concise search query to find the most relevant profit prediction data (no explanations).`

const profitSearchPrompt = `Research the following crop profit prediction query:
%s

Provide detailed information on:
1. Current market price for the crop in the specified region
2. Typical input costs (fertilizer, irrigation, seeds, labor, pesticides, etc.)
3. Historical price trend summary for the last 12 months
4. Yield expectations for this crop in the region
5. Any risk factors affecting profitability

Return ONLY valid JSON with this structure:
{
  "market_data": {
    "current_price": "string (price per unit with unit)",
    "price_trend": "string (summary of recent trends)",
    "price_forecast": "string (expected price movement)"
  },
  "input_costs": {
    "fertilizer": "string (cost per acre)",
    "seeds": "string (cost per acre)",
    "irrigation": "string (cost per acre)",
    "labor": "string (cost per acre)",
    "pesticides": "string (cost per acre)",
    "equipment": "string (cost per acre)",
    "miscellaneous": "string (cost per acre)"
  },
  "yield_data": {
    "average_yield": "string (yield per acre with unit)",
    "quality_factors": "string"
  },
  "risk_factors": ["string"],
  "source": "string"
}

Use the most recent and accurate data available.`

const profitExpandPrompt = `You are an agricultural economics expert.
Based on the following farmer profile and market data, generate a JSON response:

User Profile: %s
Market Data: %s

Required JSON Output:
{
  "crop_name": "string",
  "region": "string",
  "estimated_yield": "string",
  "market_price": "string",
  "total_cost": "string",
  "expected_revenue": "string",
  "expected_profit": "string",
  "risk_factors": ["string"],
  "recommendation": "string",
  "notes": "string"
}

Important guidelines:
1. Calculate the total_cost by multiplying per-acre costs by farm size
2. Calculate expected_revenue by multiplying yield by market price
3. Calculate expected_profit as revenue minus total cost
4. Include monetary values in Indian Rupees (₹)
5. Provide 2-3 specific risk factors that could impact profit
6. Give a clear recommendation on whether to proceed with this crop
7. Include helpful notes on improving profitability

Response MUST be valid JSON only.`

const cropDoctorPrompt = `You are an expert agricultural pathologist and crop disease diagnostician.
Carefully analyze this crop/plant image for any signs of disease, pest damage, or health issues.

Look for:
- Leaf spots, discoloration, or unusual markings
- Wilting, browning, or yellowing of leaves
- Pest damage or insect presence
- Fungal growth or bacterial infections
- Overall plant health indicators

Provide your analysis in this exact JSON format:
{
  "disease_name": "Specific disease name or 'Healthy' if no issues found",
  "severity": "Low/Medium/High or 'None' if healthy",
  "recommended_treatment": "Detailed treatment recommendations including fungicides, pesticides, cultural practices, or preventive measures"
}

Be specific and actionable in your recommendations. If the plant appears healthy, mention preventive care tips.
Respond ONLY with valid JSON - no additional text.`
