package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, title, description, price, location, image, bedrooms, bathrooms, size_sqft, year_built, amenities)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title       = VALUES(title),
  description = VALUES(description),
  price       = VALUES(price),
  location    = VALUES(location),
  image       = VALUES(image),
  bedrooms    = VALUES(bedrooms),
  bathrooms   = VALUES(bathrooms),
  size_sqft   = VALUES(size_sqft),
  year_built  = VALUES(year_built),
  amenities   = VALUES(amenities),
  updated_at  = CURRENT_TIMESTAMP
`

const getPropertySQL = `
SELECT
  id,
  title,
  description,
  price,
  location,
  image,
  bedrooms,
  bathrooms,
  size_sqft,
  year_built,
  amenities
FROM properties
WHERE id = ?
`
